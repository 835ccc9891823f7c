package validation

import (
	"github.com/sbilibin2017/personal-horoscope/internal/models"
	"github.com/sbilibin2017/personal-horoscope/internal/zodiac"
)

func intPtr(v int) *int { return &v }

func signNames() []string {
	signs := zodiac.Signs()
	names := make([]string, len(signs))
	for i, s := range signs {
		names[i] = s.String()
	}
	return names
}

// HoroscopeSchema constrains a horoscope record before it is persisted.
var HoroscopeSchema = Schema{
	"user_id":       {Type: TypeUUID, Required: true},
	"date":          {Type: TypeTime, Required: true},
	"zodiac_sign":   {Type: TypeString, Required: true, Enum: signNames()},
	"content":       {Type: TypeString, Required: true},
	"mood":          {Type: TypeString},
	"compatibility": {Type: TypeInt, Min: intPtr(1), Max: intPtr(10)},
	"lucky_number":  {Type: TypeString},
	"lucky_time":    {Type: TypeString},
	"lucky_color":   {Type: TypeString},
}

// HoroscopePatchSchema constrains a partial update. Content may be omitted but not emptied.
var HoroscopePatchSchema = Schema{
	"zodiac_sign":   {Type: TypeString, Enum: signNames()},
	"content":       {Type: TypeString, Min: intPtr(1)},
	"mood":          {Type: TypeString},
	"compatibility": {Type: TypeInt, Min: intPtr(1), Max: intPtr(10)},
	"lucky_number":  {Type: TypeString},
	"lucky_time":    {Type: TypeString},
	"lucky_color":   {Type: TypeString},
}

// UserSchema constrains signup input.
var UserSchema = Schema{
	"name":      {Type: TypeString, Required: true},
	"email":     {Type: TypeEmail, Required: true},
	"password":  {Type: TypeString, Required: true, Min: intPtr(6)},
	"birthdate": {Type: TypeTime, Required: true},
}

// HoroscopeData flattens a record into the map form Validate expects.
func HoroscopeData(h *models.HoroscopeDB) map[string]any {
	data := map[string]any{
		"user_id":     h.UserID.String(),
		"date":        h.Date,
		"zodiac_sign": h.ZodiacSign.String(),
		"content":     h.Content,
	}
	putString(data, "mood", h.Mood)
	putInt(data, "compatibility", h.Compatibility)
	putString(data, "lucky_number", h.LuckyNumber)
	putString(data, "lucky_time", h.LuckyTime)
	putString(data, "lucky_color", h.LuckyColor)
	return data
}

// PatchData flattens the set fields of a patch.
func PatchData(p models.HoroscopePatch) map[string]any {
	data := make(map[string]any)
	if p.ZodiacSign != nil {
		data["zodiac_sign"] = p.ZodiacSign.String()
	}
	putString(data, "content", p.Content)
	putString(data, "mood", p.Mood)
	putInt(data, "compatibility", p.Compatibility)
	putString(data, "lucky_number", p.LuckyNumber)
	putString(data, "lucky_time", p.LuckyTime)
	putString(data, "lucky_color", p.LuckyColor)
	return data
}

func putString(data map[string]any, key string, v *string) {
	if v != nil {
		data[key] = *v
	}
}

func putInt(data map[string]any, key string, v *int) {
	if v != nil {
		data[key] = *v
	}
}
