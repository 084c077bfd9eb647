package model

type UserRole string

const (
	RoleAdmin    UserRole = "Admin"
	RoleExaminer UserRole = "Examiner"
	RoleTrainee  UserRole = "Trainee"
)

// AdminUsername 内置管理员账号，批量保存时不允许删除
const AdminUsername = "admin"

// swagger:model User
type User struct {
	ID       uint     `gorm:"primaryKey;autoIncrement" json:"id,omitempty"`
	Username string   `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Password string   `gorm:"size:100;not null" json:"password,omitempty"`
	Role     UserRole `gorm:"size:20;not null" json:"role"`
}

func (User) TableName() string {
	return "users"
}

// Sanitized 返回去除密码后的副本，除导出外的所有响应都用它
func (u User) Sanitized() User {
	u.Password = ""
	return u
}
