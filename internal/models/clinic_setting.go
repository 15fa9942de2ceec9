package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Setting keys, one row per section of the clinic configuration.
const (
	SettingDoctorInfo   = "doctor_info"
	SettingContactInfo  = "contact_info"
	SettingWorkingHours = "working_hours"
)

// JSONValue is a raw JSON document stored in a single column.
type JSONValue json.RawMessage

// Value implements driver.Valuer.
func (v JSONValue) Value() (driver.Value, error) {
	if len(v) == 0 {
		return []byte("null"), nil
	}
	return []byte(v), nil
}

// Scan implements sql.Scanner.
func (v *JSONValue) Scan(value interface{}) error {
	if value == nil {
		*v = nil
		return nil
	}
	switch data := value.(type) {
	case []byte:
		*v = append(JSONValue{}, data...)
	case string:
		*v = JSONValue(data)
	default:
		return fmt.Errorf("unsupported type for JSONValue: %T", value)
	}
	return nil
}

// MarshalJSON passes the stored document through unchanged.
func (v JSONValue) MarshalJSON() ([]byte, error) {
	if len(v) == 0 {
		return []byte("null"), nil
	}
	return v, nil
}

// UnmarshalJSON stores the document as-is.
func (v *JSONValue) UnmarshalJSON(data []byte) error {
	*v = append((*v)[0:0], data...)
	return nil
}

// ClinicSetting is one section of the clinic configuration persisted as a
// {key, value} row. The key carries a uniqueness constraint so saves can be
// a single upsert per section.
type ClinicSetting struct {
	BaseModel
	Key   string    `gorm:"uniqueIndex;size:100;not null" json:"key"`
	Value JSONValue `gorm:"type:json" json:"value"`
}

// TableName keeps the table name the public site historically used.
func (ClinicSetting) TableName() string {
	return "clinic_settings"
}

// DoctorInfo describes the doctor shown on the public pages.
type DoctorInfo struct {
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Bio       string `json:"bio"`
}

// ContactInfo holds how patients reach the clinic. WhatsApp is the number
// booking confirmations and reminders are composed against.
type ContactInfo struct {
	Phone    string `json:"phone"`
	WhatsApp string `json:"whatsapp"`
	Address  string `json:"address"`
	Email    string `json:"email"`
}

// ClinicSettings is the typed view over the clinic_settings rows, read and
// written as a unit rather than as loose key/value pairs.
type ClinicSettings struct {
	DoctorInfo   DoctorInfo        `json:"doctorInfo"`
	ContactInfo  ContactInfo       `json:"contactInfo"`
	WorkingHours map[string]string `json:"workingHours"`
}

// SettingsFromRows assembles the typed settings from whatever rows exist.
// Missing sections are left at their zero values.
func SettingsFromRows(rows []ClinicSetting) (ClinicSettings, error) {
	settings := ClinicSettings{WorkingHours: map[string]string{}}
	for _, row := range rows {
		if len(row.Value) == 0 {
			continue
		}
		var err error
		switch row.Key {
		case SettingDoctorInfo:
			err = json.Unmarshal(row.Value, &settings.DoctorInfo)
		case SettingContactInfo:
			err = json.Unmarshal(row.Value, &settings.ContactInfo)
		case SettingWorkingHours:
			err = json.Unmarshal(row.Value, &settings.WorkingHours)
		}
		if err != nil {
			return settings, fmt.Errorf("decode setting %q: %w", row.Key, err)
		}
	}
	return settings, nil
}

// Rows serializes the typed settings back into one row per section.
func (s ClinicSettings) Rows() ([]ClinicSetting, error) {
	sections := []struct {
		key   string
		value interface{}
	}{
		{SettingDoctorInfo, s.DoctorInfo},
		{SettingContactInfo, s.ContactInfo},
		{SettingWorkingHours, s.WorkingHours},
	}

	rows := make([]ClinicSetting, 0, len(sections))
	for _, section := range sections {
		data, err := json.Marshal(section.value)
		if err != nil {
			return nil, fmt.Errorf("encode setting %q: %w", section.key, err)
		}
		rows = append(rows, ClinicSetting{Key: section.key, Value: JSONValue(data)})
	}
	return rows, nil
}
