// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(LogConfig{Level: "warn"}, &buf)
	require.Equal(t, zerolog.WarnLevel, log.GetLevel())

	log.Info().Msg("hidden")
	log.Warn().Int("round", 3).Msg("shown")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), `"round":3`)

	require.Equal(t, zerolog.InfoLevel, newLogger(LogConfig{Level: "chatty"}, &buf).GetLevel())
	require.Equal(t, zerolog.InfoLevel, newLogger(LogConfig{}, &buf).GetLevel())
}

func TestGetANSIColors(t *testing.T) {
	success, _, _, _, reset := GetANSIColors(TerminalModeUnknown)
	require.Empty(t, success)
	require.Empty(t, reset)

	success, _, _, _, reset = GetANSIColors(TerminalModeLight)
	require.Equal(t, "\033[32m", success)
	require.Equal(t, "\033[0m", reset)
}
