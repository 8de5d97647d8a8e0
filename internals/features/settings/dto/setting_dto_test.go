package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"virgimotor_backend/internals/features/settings/model"
)

func TestToSettingsMap(t *testing.T) {
	rows := []model.SettingModel{
		{Key: "whatsapp_number", Value: "6281234567890"},
		{Key: "phone", Value: "(021) 8900-8888"},
		{Key: "instagram_url", Value: ""},
	}

	out := ToSettingsMap(rows)
	assert.Len(t, out, 3)
	assert.Equal(t, "6281234567890", out["whatsapp_number"])
	assert.Equal(t, "", out["instagram_url"])
}

func TestToSettingsMapEmpty(t *testing.T) {
	out := ToSettingsMap(nil)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}
