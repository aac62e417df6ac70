// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CellsColumns holds the columns for the "cells" table.
	CellsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "code", Type: field.TypeString, Unique: true},
		{Name: "capacity", Type: field.TypeInt, Default: 0},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CellsTable holds the schema information for the "cells" table.
	CellsTable = &schema.Table{
		Name:       "cells",
		Columns:    CellsColumns,
		PrimaryKey: []*schema.Column{CellsColumns[0]},
	}
	// PdlsColumns holds the columns for the "pdls" table.
	PdlsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "cell", Type: field.TypeString},
		{Name: "crime", Type: field.TypeString, Nullable: true},
		{Name: "date_committed", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// PdlsTable holds the schema information for the "pdls" table.
	PdlsTable = &schema.Table{
		Name:       "pdls",
		Columns:    PdlsColumns,
		PrimaryKey: []*schema.Column{PdlsColumns[0]},
	}
	// RegisteredVisitorsColumns holds the columns for the "registered_visitors" table.
	RegisteredVisitorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "visitor_id", Type: field.TypeString, Unique: true, Size: 16},
		{Name: "full_name", Type: field.TypeString},
		{Name: "relationship", Type: field.TypeString, Nullable: true},
		{Name: "age", Type: field.TypeInt, Nullable: true},
		{Name: "address", Type: field.TypeString, Nullable: true},
		{Name: "valid_id", Type: field.TypeString, Nullable: true},
		{Name: "contact_number", Type: field.TypeString, Nullable: true},
		{Name: "date_of_application", Type: field.TypeTime, Nullable: true},
		{Name: "conjugal_verified", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "pdl_visitors", Type: field.TypeUUID, Nullable: true},
	}
	// RegisteredVisitorsTable holds the schema information for the "registered_visitors" table.
	RegisteredVisitorsTable = &schema.Table{
		Name:       "registered_visitors",
		Columns:    RegisteredVisitorsColumns,
		PrimaryKey: []*schema.Column{RegisteredVisitorsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "registered_visitors_pdls_visitors",
				Columns:    []*schema.Column{RegisteredVisitorsColumns[11]},
				RefColumns: []*schema.Column{PdlsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
	}
	// StaffUsersColumns holds the columns for the "staff_users" table.
	StaffUsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "username", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"staff", "admin"}, Default: "staff"},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// StaffUsersTable holds the schema information for the "staff_users" table.
	StaffUsersTable = &schema.Table{
		Name:       "staff_users",
		Columns:    StaffUsersColumns,
		PrimaryKey: []*schema.Column{StaffUsersColumns[0]},
	}
	// VisitSessionsColumns holds the columns for the "visit_sessions" table.
	VisitSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "visitor_name", Type: field.TypeString},
		{Name: "visitor_key", Type: field.TypeString},
		{Name: "pdl_name", Type: field.TypeString},
		{Name: "cell", Type: field.TypeString},
		{Name: "relationship", Type: field.TypeString, Nullable: true},
		{Name: "contact_number", Type: field.TypeString, Nullable: true},
		{Name: "purpose", Type: field.TypeEnum, Enums: []string{"normal", "conjugal"}, Default: "normal"},
		{Name: "time_in", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "timestamptz"}},
		{Name: "time_out", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "timestamptz"}},
		{Name: "scan_date", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
	}
	// VisitSessionsTable holds the schema information for the "visit_sessions" table.
	VisitSessionsTable = &schema.Table{
		Name:       "visit_sessions",
		Columns:    VisitSessionsColumns,
		PrimaryKey: []*schema.Column{VisitSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "visitsession_visitor_key_pdl_name_cell",
				Unique:  true,
				Columns: []*schema.Column{VisitSessionsColumns[2], VisitSessionsColumns[3], VisitSessionsColumns[4]},
				Annotation: &entsql.IndexAnnotation{
					Where: "time_out IS NULL",
				},
			},
			{
				Name:    "visitsession_scan_date",
				Unique:  false,
				Columns: []*schema.Column{VisitSessionsColumns[10]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CellsTable,
		PdlsTable,
		RegisteredVisitorsTable,
		StaffUsersTable,
		VisitSessionsTable,
	}
)

func init() {
	RegisteredVisitorsTable.ForeignKeys[0].RefTable = PdlsTable
}
