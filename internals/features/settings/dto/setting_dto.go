package dto

import "virgimotor_backend/internals/features/settings/model"

// UpsertSettingsRequest adalah body PUT /api/admin/settings:
// map key→value yang di-upsert sekaligus.
type UpsertSettingsRequest map[string]string

// ToSettingsMap meratakan baris settings jadi map key→value untuk
// konsumsi publik (key unik, jadi tidak ambigu).
func ToSettingsMap(rows []model.SettingModel) map[string]string {
	out := make(map[string]string, len(rows))
	for _, s := range rows {
		out[s.Key] = s.Value
	}
	return out
}
