package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

type GarmentType string

const (
	GarmentShirt GarmentType = "Shirt"
	GarmentPant  GarmentType = "Pant"
	GarmentKurta GarmentType = "Kurta"
	GarmentSuit  GarmentType = "Suit"
)

// AllGarmentTypes lists every garment type in tab order.
var AllGarmentTypes = []GarmentType{GarmentShirt, GarmentPant, GarmentKurta, GarmentSuit}

func (g GarmentType) Valid() bool {
	switch g {
	case GarmentShirt, GarmentPant, GarmentKurta, GarmentSuit:
		return true
	}
	return false
}

// MeasurementLabels holds the shop's measurement field names per garment
// type, in the order they appear on the measurement form and the invoice.
var MeasurementLabels = map[GarmentType][]string{
	GarmentShirt: {"લંબાઈ", "છાતી", "કમર", "સીટ", "શોલ્ડર", "બાહ", "કોલર", "કફ", "ફ્રન્ટ", "ફિટ"},
	GarmentPant:  {"લંબાઈ", "કમર", "સીટ", "થાઈ", "ઘૂંટણ", "બોટમ", "રાઈઝ"},
	GarmentKurta: {"લંબાઈ", "છાતી", "કમર", "સીટ", "શોલ્ડર", "બાહ", "કોલર"},
	GarmentSuit:  {"કોટ લંબાઈ", "છાતી", "કમર", "સીટ", "શોલ્ડર", "બાહ", "પેન્ટ લંબાઈ", "પેન્ટ કમર"},
}

// ValueMap is a label -> value mapping stored as a JSONB column.
type ValueMap map[string]string

func (m ValueMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *ValueMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for ValueMap", value)
	}
	return json.Unmarshal(data, m)
}

// HasValues reports whether at least one measurement field is filled in.
func (m ValueMap) HasValues() bool {
	for _, v := range m {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}
