package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// generateDDL creates a CREATE TABLE statement from struct tags.
// The statement does nothing if the table exists already.
func generateDDL(model any, tableName string, constraints []string) string {
	v := reflect.ValueOf(model)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	t := v.Type()

	var columns []string

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		dbTag := field.Tag.Get("db")
		ddlTag := field.Tag.Get("ddl")

		if dbTag != "" && ddlTag != "" {
			columns = append(columns, fmt.Sprintf("    %s %s", dbTag, ddlTag))
		}
	}
	for _, v := range constraints {
		columns = append(columns, "    "+v)
	}

	ddl := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n%s\n);",
		tableName,
		strings.Join(columns, ",\n"))

	return ddl
}

// Label DDL methods
func (l Label) TableDDL() string {
	return generateDDL(l, l.TableName(), l.Constraints())
}

func (l Label) Constraints() []string {
	return []string{}
}

func (l Label) TableName() string {
	return "labels"
}

// Subscription DDL methods
func (s Subscription) TableDDL() string {
	return generateDDL(s, s.TableName(), s.Constraints())
}

func (s Subscription) Constraints() []string {
	return []string{
		"FOREIGN KEY (label_id) REFERENCES labels(label_id)",
	}
}

func (s Subscription) TableName() string {
	return "subscriptions"
}

// Publication DDL methods
func (p Publication) TableDDL() string {
	return generateDDL(p, p.TableName(), p.Constraints())
}

func (p Publication) Constraints() []string {
	return []string{}
}

func (p Publication) TableName() string {
	return "publications"
}

// PublicationMatch DDL methods
func (pm PublicationMatch) TableDDL() string {
	return generateDDL(pm, pm.TableName(), pm.Constraints())
}

func (pm PublicationMatch) Constraints() []string {
	return []string{
		"FOREIGN KEY (publication_id) REFERENCES publications(publication_id)",
		"FOREIGN KEY (label_id) REFERENCES labels(label_id)",
		"UNIQUE (publication_id, label_id)",
	}
}

func (pm PublicationMatch) TableName() string {
	return "publication_matches"
}
