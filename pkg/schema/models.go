// Package schema provides the relational model of pubdb.
//
// Publications are tagged with labels through the publication_matches
// association table. Labels are the original taxonomy entries, while
// subscriptions are expanded entries, each of them grouped under exactly
// one label.
package schema

// DDLGenerator defines how Go models generate table definitions.
type DDLGenerator interface {
	// TableDDL returns the CREATE TABLE statement for this model.
	TableDDL() string

	// Constraints returns table-level constraints (foreign keys,
	// uniqueness) for this model. Returns empty slice if there are none.
	Constraints() []string

	// TableName returns the table name for this model.
	TableName() string
}

// Label is an original, non-expanded taxonomy entry.
type Label struct {
	// LabelID is assigned by the taxonomy source. For datasets with
	// binary label vectors it is a power of two.
	LabelID int64 `db:"label_id" ddl:"INTEGER PRIMARY KEY" gorm:"column:label_id;primaryKey;autoIncrement:false"`

	// Label is the text of the label.
	Label string `db:"label" ddl:"TEXT" gorm:"column:label;type:text"`
}

// Subscription is an expanded taxonomy entry that belongs to a Label.
type Subscription struct {
	// SubscriptionID is assigned by the taxonomy source.
	SubscriptionID int64 `db:"subscription_id" ddl:"INTEGER PRIMARY KEY" gorm:"column:subscription_id;primaryKey;autoIncrement:false"`

	// LabelID is the group of the subscription, it references Label.
	LabelID int64 `db:"label_id" ddl:"INTEGER" gorm:"column:label_id;index"`

	// Subscription is the text of the subscription.
	Subscription string `db:"subscription" ddl:"TEXT" gorm:"column:subscription;type:text"`

	// Group is used by GORM to create the foreign key.
	Group *Label `gorm:"foreignKey:LabelID;references:LabelID"`
}

// Publication is a document from the dataset.
type Publication struct {
	// PublicationID is assigned by the dataset.
	PublicationID int64 `db:"publication_id" ddl:"INTEGER PRIMARY KEY" gorm:"column:publication_id;primaryKey;autoIncrement:false"`

	// Publication is the text of the document.
	Publication string `db:"publication" ddl:"TEXT" gorm:"column:publication;type:text"`
}

// PublicationMatch records that a Publication is tagged with a Label.
// A pair of publication and label appears at most once.
type PublicationMatch struct {
	PublicationID int64 `db:"publication_id" ddl:"INTEGER" gorm:"column:publication_id;uniqueIndex:idx_publication_matches_pair,priority:1"`
	LabelID       int64 `db:"label_id" ddl:"INTEGER" gorm:"column:label_id;uniqueIndex:idx_publication_matches_pair,priority:2;index"`

	Publication *Publication `gorm:"foreignKey:PublicationID;references:PublicationID"`
	Label       *Label       `gorm:"foreignKey:LabelID;references:LabelID"`
}
