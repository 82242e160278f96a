package schema

import (
	"gorm.io/gorm"
)

// AllModels returns all schema models in the order of their
// dependencies: referenced tables go first.
func AllModels() []DDLGenerator {
	return []DDLGenerator{
		&Label{},
		&Subscription{},
		&Publication{},
		&PublicationMatch{},
	}
}

// TableNames returns names of all tables of the schema.
func TableNames() []string {
	models := AllModels()
	res := make([]string, len(models))
	for i, v := range models {
		res[i] = v.TableName()
	}
	return res
}

// Migrate runs GORM AutoMigrate to create missing tables.
func Migrate(db *gorm.DB) error {
	models := AllModels()
	res := make([]any, len(models))
	for i := range models {
		res[i] = models[i]
	}
	return db.AutoMigrate(res...)
}
