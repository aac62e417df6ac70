// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"
	"visitlog/ent/cell"
	"visitlog/ent/pdl"
	"visitlog/ent/registeredvisitor"
	"visitlog/ent/schema"
	"visitlog/ent/staffuser"
	"visitlog/ent/visitsession"

	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	cellFields := schema.Cell{}.Fields()
	_ = cellFields
	// cellDescCode is the schema descriptor for code field.
	cellDescCode := cellFields[1].Descriptor()
	// cell.CodeValidator is a validator for the "code" field. It is called by the builders before save.
	cell.CodeValidator = cellDescCode.Validators[0].(func(string) error)
	// cellDescCapacity is the schema descriptor for capacity field.
	cellDescCapacity := cellFields[2].Descriptor()
	// cell.DefaultCapacity holds the default value on creation for the capacity field.
	cell.DefaultCapacity = cellDescCapacity.Default.(int)
	// cell.CapacityValidator is a validator for the "capacity" field. It is called by the builders before save.
	cell.CapacityValidator = cellDescCapacity.Validators[0].(func(int) error)
	// cellDescActive is the schema descriptor for active field.
	cellDescActive := cellFields[3].Descriptor()
	// cell.DefaultActive holds the default value on creation for the active field.
	cell.DefaultActive = cellDescActive.Default.(bool)
	// cellDescCreatedAt is the schema descriptor for created_at field.
	cellDescCreatedAt := cellFields[4].Descriptor()
	// cell.DefaultCreatedAt holds the default value on creation for the created_at field.
	cell.DefaultCreatedAt = cellDescCreatedAt.Default.(func() time.Time)
	// cellDescID is the schema descriptor for id field.
	cellDescID := cellFields[0].Descriptor()
	// cell.DefaultID holds the default value on creation for the id field.
	cell.DefaultID = cellDescID.Default.(func() uuid.UUID)
	pdlFields := schema.Pdl{}.Fields()
	_ = pdlFields
	// pdlDescName is the schema descriptor for name field.
	pdlDescName := pdlFields[1].Descriptor()
	// pdl.NameValidator is a validator for the "name" field. It is called by the builders before save.
	pdl.NameValidator = pdlDescName.Validators[0].(func(string) error)
	// pdlDescCell is the schema descriptor for cell field.
	pdlDescCell := pdlFields[2].Descriptor()
	// pdl.CellValidator is a validator for the "cell" field. It is called by the builders before save.
	pdl.CellValidator = pdlDescCell.Validators[0].(func(string) error)
	// pdlDescCreatedAt is the schema descriptor for created_at field.
	pdlDescCreatedAt := pdlFields[5].Descriptor()
	// pdl.DefaultCreatedAt holds the default value on creation for the created_at field.
	pdl.DefaultCreatedAt = pdlDescCreatedAt.Default.(func() time.Time)
	// pdlDescID is the schema descriptor for id field.
	pdlDescID := pdlFields[0].Descriptor()
	// pdl.DefaultID holds the default value on creation for the id field.
	pdl.DefaultID = pdlDescID.Default.(func() uuid.UUID)
	registeredvisitorFields := schema.RegisteredVisitor{}.Fields()
	_ = registeredvisitorFields
	// registeredvisitorDescVisitorID is the schema descriptor for visitor_id field.
	registeredvisitorDescVisitorID := registeredvisitorFields[1].Descriptor()
	// registeredvisitor.VisitorIDValidator is a validator for the "visitor_id" field. It is called by the builders before save.
	registeredvisitor.VisitorIDValidator = func() func(string) error {
		validators := registeredvisitorDescVisitorID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(visitor_id string) error {
			for _, fn := range fns {
				if err := fn(visitor_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// registeredvisitorDescFullName is the schema descriptor for full_name field.
	registeredvisitorDescFullName := registeredvisitorFields[2].Descriptor()
	// registeredvisitor.FullNameValidator is a validator for the "full_name" field. It is called by the builders before save.
	registeredvisitor.FullNameValidator = registeredvisitorDescFullName.Validators[0].(func(string) error)
	// registeredvisitorDescAge is the schema descriptor for age field.
	registeredvisitorDescAge := registeredvisitorFields[4].Descriptor()
	// registeredvisitor.AgeValidator is a validator for the "age" field. It is called by the builders before save.
	registeredvisitor.AgeValidator = registeredvisitorDescAge.Validators[0].(func(int) error)
	// registeredvisitorDescConjugalVerified is the schema descriptor for conjugal_verified field.
	registeredvisitorDescConjugalVerified := registeredvisitorFields[9].Descriptor()
	// registeredvisitor.DefaultConjugalVerified holds the default value on creation for the conjugal_verified field.
	registeredvisitor.DefaultConjugalVerified = registeredvisitorDescConjugalVerified.Default.(bool)
	// registeredvisitorDescCreatedAt is the schema descriptor for created_at field.
	registeredvisitorDescCreatedAt := registeredvisitorFields[10].Descriptor()
	// registeredvisitor.DefaultCreatedAt holds the default value on creation for the created_at field.
	registeredvisitor.DefaultCreatedAt = registeredvisitorDescCreatedAt.Default.(func() time.Time)
	// registeredvisitorDescID is the schema descriptor for id field.
	registeredvisitorDescID := registeredvisitorFields[0].Descriptor()
	// registeredvisitor.DefaultID holds the default value on creation for the id field.
	registeredvisitor.DefaultID = registeredvisitorDescID.Default.(func() uuid.UUID)
	staffuserFields := schema.StaffUser{}.Fields()
	_ = staffuserFields
	// staffuserDescUsername is the schema descriptor for username field.
	staffuserDescUsername := staffuserFields[1].Descriptor()
	// staffuser.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	staffuser.UsernameValidator = staffuserDescUsername.Validators[0].(func(string) error)
	// staffuserDescPasswordHash is the schema descriptor for password_hash field.
	staffuserDescPasswordHash := staffuserFields[2].Descriptor()
	// staffuser.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	staffuser.PasswordHashValidator = staffuserDescPasswordHash.Validators[0].(func(string) error)
	// staffuserDescCreatedAt is the schema descriptor for created_at field.
	staffuserDescCreatedAt := staffuserFields[5].Descriptor()
	// staffuser.DefaultCreatedAt holds the default value on creation for the created_at field.
	staffuser.DefaultCreatedAt = staffuserDescCreatedAt.Default.(func() time.Time)
	// staffuserDescID is the schema descriptor for id field.
	staffuserDescID := staffuserFields[0].Descriptor()
	// staffuser.DefaultID holds the default value on creation for the id field.
	staffuser.DefaultID = staffuserDescID.Default.(func() uuid.UUID)
	visitsessionFields := schema.VisitSession{}.Fields()
	_ = visitsessionFields
	// visitsessionDescVisitorName is the schema descriptor for visitor_name field.
	visitsessionDescVisitorName := visitsessionFields[1].Descriptor()
	// visitsession.VisitorNameValidator is a validator for the "visitor_name" field. It is called by the builders before save.
	visitsession.VisitorNameValidator = visitsessionDescVisitorName.Validators[0].(func(string) error)
	// visitsessionDescVisitorKey is the schema descriptor for visitor_key field.
	visitsessionDescVisitorKey := visitsessionFields[2].Descriptor()
	// visitsession.VisitorKeyValidator is a validator for the "visitor_key" field. It is called by the builders before save.
	visitsession.VisitorKeyValidator = visitsessionDescVisitorKey.Validators[0].(func(string) error)
	// visitsessionDescPdlName is the schema descriptor for pdl_name field.
	visitsessionDescPdlName := visitsessionFields[3].Descriptor()
	// visitsession.PdlNameValidator is a validator for the "pdl_name" field. It is called by the builders before save.
	visitsession.PdlNameValidator = visitsessionDescPdlName.Validators[0].(func(string) error)
	// visitsessionDescCell is the schema descriptor for cell field.
	visitsessionDescCell := visitsessionFields[4].Descriptor()
	// visitsession.CellValidator is a validator for the "cell" field. It is called by the builders before save.
	visitsession.CellValidator = visitsessionDescCell.Validators[0].(func(string) error)
	// visitsessionDescCreatedAt is the schema descriptor for created_at field.
	visitsessionDescCreatedAt := visitsessionFields[11].Descriptor()
	// visitsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	visitsession.DefaultCreatedAt = visitsessionDescCreatedAt.Default.(func() time.Time)
	// visitsessionDescID is the schema descriptor for id field.
	visitsessionDescID := visitsessionFields[0].Descriptor()
	// visitsession.DefaultID holds the default value on creation for the id field.
	visitsession.DefaultID = visitsessionDescID.Default.(func() uuid.UUID)
}
