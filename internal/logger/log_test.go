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

package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerWithWriter(&buf)

	SetDebug(false)
	l := NewLogger("lexicon")
	l.Debugw("hidden", "id", "ja")
	l.Infow("loaded", "id", "ja")
	Sync()

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug entry written at info level: %s", out)
	}
	for _, want := range []string{`"msg":"loaded"`, `"logger":"lexicon"`, `"id":"ja"`, `"timestamp"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}

	buf.Reset()
	SetDebug(true)
	l.Debugw("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("debug entry not written with debug enabled: %s", buf.String())
	}
}
