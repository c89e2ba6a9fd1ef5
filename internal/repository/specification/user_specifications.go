package specification

import "gorm.io/gorm"

// ByEmail filters users by their normalized (lowercase) email address.
// Callers are expected to lowercase before querying.
type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

// ByToken filters token-keyed records
type ByToken struct {
	Token string
}

func (s ByToken) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("token = ?", s.Token)
}

// ByRequestType filters AI request audit entries by action type
type ByRequestType struct {
	Type string
}

func (s ByRequestType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("type = ?", s.Type)
}
