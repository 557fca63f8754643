// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		in   string
		want language.Tag
	}{
		{"vi", language.Vietnamese},
		{"vi-VN", language.Vietnamese},
		{"en", language.English},
		{"en-US", language.English},
		{"", language.Vietnamese},
		{"???", language.Vietnamese},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Match(tt.in)
			base, _ := got.Base()
			want, _ := tt.want.Base()
			assert.Equal(t, want, base)
		})
	}
}

func TestCatalogsComplete(t *testing.T) {
	for key := range vi {
		_, ok := en[key]
		assert.True(t, ok, "missing English message for %s", key)
	}
	for key := range en {
		_, ok := vi[key]
		assert.True(t, ok, "missing Vietnamese message for %s", key)
	}
}

func TestPrinter(t *testing.T) {
	p := Default()
	assert.Equal(t, "Không thể gửi tin nhắn", p.T(ErrSendMessage))
	assert.Equal(t, "Có lỗi xảy ra khi tạo ticket", p.T(ErrCreateTicket))
	assert.Equal(t, "5 chunks", p.T(DocChunks, 5))

	e := New("en")
	assert.Equal(t, "Could not send the message", e.T(ErrSendMessage))
	assert.Equal(t, "12 characters", e.T(DocChars, 12))

	assert.True(t, Has(ErrDeleteCategory))
	assert.False(t, Has(Key("nope")))
}

func TestPrinter_SetLanguage(t *testing.T) {
	p := New("vi")
	shared := p
	p.SetLanguage("en")

	base, _ := shared.Tag().Base()
	want, _ := language.English.Base()
	assert.Equal(t, want, base)
	assert.Equal(t, "Configuration reloaded", shared.T(ConfigReloaded))
}
