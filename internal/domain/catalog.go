package domain

import (
	"database/sql/driver"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// Category is immutable reference data created at seed time only.
type Category struct {
	ID          string `gorm:"primaryKey;size:64" json:"id"`
	Name        string `gorm:"size:128;not null" json:"name"`
	Description string `gorm:"not null" json:"description"`
}

// Product is immutable reference data created at seed time only.
// CategoryID must reference an existing category.
type Product struct {
	ID          string     `gorm:"primaryKey;size:64" json:"id"`
	Name        string     `gorm:"size:200;index;not null" json:"name"`
	CategoryID  string     `gorm:"size:64;index;not null" json:"categoryId"`
	Description string     `gorm:"not null" json:"description"`
	Price       float64    `gorm:"not null" json:"price"`
	Volume      string     `gorm:"size:32;not null" json:"volume"`
	ABV         float64    `gorm:"column:abv;not null" json:"abv"`
	ImageURL    string     `gorm:"size:1024;not null" json:"imageUrl"`
	Tags        StringList `gorm:"type:jsonb;not null" json:"tags"`
	IsFeatured  bool       `gorm:"not null;default:false" json:"isFeatured"`
	Stock       int        `gorm:"not null" json:"stock"`

	Category Category `gorm:"foreignKey:CategoryID" json:"-"`
}

// StringList stores a string slice as a jsonb column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return jsoniter.MarshalToString(l)
}

func (l *StringList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return jsoniter.Unmarshal(v, l)
	case string:
		return jsoniter.UnmarshalFromString(v, l)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", src)
	}
}
