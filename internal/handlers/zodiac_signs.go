package handlers

import (
	"net/http"
	"strings"

	"github.com/sbilibin2017/personal-horoscope/internal/zodiac"
)

// ZodiacSignItem is one entry of the sign listing
// swagger:model ZodiacSignItem
type ZodiacSignItem struct {
	// default: ARIES
	Key string `json:"key"`
	// default: Aries
	Value string `json:"value"`
}

// NewGetZodiacSignsHandler returns an HTTP handler listing all signs in calendar order.
// @Summary Get zodiac signs
// @Tags horoscope
// @Produce json
// @Success 200 {array} handlers.ZodiacSignItem "All zodiac signs"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /horoscope/zodiac-signs [get]
// @Security BearerAuth
func NewGetZodiacSignsHandler() http.HandlerFunc {
	signs := zodiac.Signs()
	items := make([]ZodiacSignItem, len(signs))
	for i, s := range signs {
		items[i] = ZodiacSignItem{Key: strings.ToUpper(s.String()), Value: s.String()}
	}

	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, items)
	}
}
