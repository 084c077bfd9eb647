package repository

import "gorm.io/gorm"

// ResetAutoIncrement 复位自增计数。导入时记录携带显式 id，计数器只需保证
// 后续插入不与导入的最大 id 冲突：
//   - sqlite 直接清掉 sqlite_sequence 里的条目（与事务兼容）；
//   - mysql 的 ALTER TABLE 会隐式提交事务，这里跳过——InnoDB 在显式 id
//     插入后会自动把计数器抬高到最大值之上，不会产生冲突。
func ResetAutoIncrement(db *gorm.DB, tables ...string) error {
	if db.Dialector.Name() != "sqlite" {
		return nil
	}

	var seqTables int64
	err := db.Raw("SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = 'sqlite_sequence'").
		Scan(&seqTables).Error
	if err != nil || seqTables == 0 {
		return err
	}

	for _, table := range tables {
		if err := db.Exec("DELETE FROM sqlite_sequence WHERE name = ?", table).Error; err != nil {
			return err
		}
	}
	return nil
}
