// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ko

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

var compoundFamilyNames = []string{"남궁", "황보", "제갈", "선우", "독고", "사공", "서문"}

var familyNames = map[string]bool{}

func init() {
	for _, n := range strings.Fields(`김 이 박 최 정 강 조 윤 장 임 한 오 서 신 권 황 안
		송 류 유 전 홍 고 문 양 손 배 백 허 남 심 노 하 곽 성 차 주 우 구 민 나 진 지
		엄 채 원 천 방 공 현 함 변 염 여 추 도 소 석 선 설 마 길 연 위 표 명 기 반 라
		왕 금 옥 육 인 맹 제 모 탁 국 어 은 편 용`) {
		familyNames[n] = true
	}
}

func isHangul(s string) bool {
	for _, r := range s {
		if !unicode.Is(unicode.Hangul, r) {
			return false
		}
	}
	return s != ""
}

// LikelyName reports whether word looks like a Korean personal name: two to
// four Hangul syllables starting with a known family name.
func LikelyName(word string) bool {
	n := utf8.RuneCountInString(word)
	if n < 2 || n > 4 || !isHangul(word) {
		return false
	}
	for _, c := range compoundFamilyNames {
		if strings.HasPrefix(word, c) && n >= 3 {
			return true
		}
	}
	first, _ := utf8.DecodeRuneInString(word)
	return n <= 3 && familyNames[string(first)]
}

// Hint returns a human readable guess at why word is not in the lexicon.
func Hint(word string) string {
	switch {
	case LikelyName(word):
		return "likely a proper noun (Korean name)"
	case utf8.RuneCountInString(word) == 1 && isHangul(word):
		return "single syllable; may be a particle or part of a longer word"
	case utf8.RuneCountInString(word) >= 6:
		return "long compound; try looking up its parts"
	}
	return ""
}
