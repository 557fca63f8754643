// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chunking

import (
	"fmt"
	"strings"
)

// Preset is a named configuration tuned for a kind of document.
type Preset struct {
	Key         string
	Name        string
	Description string
	Config      Config
}

// presets is ordered as shown in the panel.
var presets = []Preset{
	{
		Key:         "default",
		Name:        "Mặc định",
		Description: "Cấu hình cân bằng cho hầu hết tài liệu",
		Config:      Default(),
	},
	{
		Key:         "short",
		Name:        "Tài liệu ngắn",
		Description: "Chunk nhỏ, ngưỡng cao cho FAQ và ghi chú",
		Config: Config{
			MinChunkSize:          150,
			MaxChunkSize:          600,
			SimilarityThreshold:   0.8,
			OverlapSize:           50,
			UseSemanticBoundaries: true,
		},
	},
	{
		Key:         "long",
		Name:        "Tài liệu dài",
		Description: "Chunk lớn hơn, ngưỡng thấp cho báo cáo và quy trình",
		Config: Config{
			MinChunkSize:          300,
			MaxChunkSize:          1000,
			SimilarityThreshold:   0.6,
			OverlapSize:           150,
			UseSemanticBoundaries: true,
		},
	},
	{
		Key:         "technical",
		Name:        "Tài liệu kỹ thuật",
		Description: "Chunk lớn, overlap cao để giữ ngữ cảnh mã và cấu hình",
		Config: Config{
			MinChunkSize:          400,
			MaxChunkSize:          1200,
			SimilarityThreshold:   0.7,
			OverlapSize:           200,
			UseSemanticBoundaries: true,
		},
	},
}

// Presets returns a copy of the built-in presets in display order.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// LookupPreset finds a preset by key, case-insensitively.
func LookupPreset(key string) (Preset, error) {
	for _, p := range presets {
		if strings.EqualFold(p.Key, strings.TrimSpace(key)) {
			return p, nil
		}
	}
	keys := make([]string, len(presets))
	for i, p := range presets {
		keys[i] = p.Key
	}
	return Preset{}, fmt.Errorf("unknown preset %q (available: %s)", key, strings.Join(keys, ", "))
}

// MustPreset is LookupPreset for keys known at compile time.
func MustPreset(key string) Preset {
	p, err := LookupPreset(key)
	if err != nil {
		panic(err)
	}
	return p
}

// MatchPreset returns the key of the preset equal to c, or "" for a custom config.
func MatchPreset(c Config) string {
	for _, p := range presets {
		if p.Config == c {
			return p.Key
		}
	}
	return ""
}

// Info is the explanation shown in the chunking info overlay.
const Info = `Semantic chunking chia tài liệu theo ý nghĩa thay vì theo số ký tự cố định.

Cách hoạt động:
  1. Tách tài liệu thành các câu và đoạn văn
  2. Tính embedding cho từng câu
  3. So sánh độ tương đồng giữa các câu liên tiếp
  4. Tạo chunk mới khi độ tương đồng thấp hơn ngưỡng

Tham số:
  - Kích thước tối thiểu/tối đa giới hạn độ dài mỗi chunk
  - Ngưỡng tương đồng cao tạo nhiều chunk nhỏ hơn
  - Overlap giữ ngữ cảnh giữa hai chunk liền kề

Lợi ích:
  - Chunk giữ trọn một ý, câu trả lời chính xác hơn
  - Giảm việc cắt ngang câu hoặc bảng biểu`
