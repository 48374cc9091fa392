/*
 * Copyright 2025 InfAI (CC SES)
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package report_engine

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// ParseDuration works like time.ParseDuration but also knows days (d) and weeks (w), e.g. "1d12h".
// Fractions are not supported.
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty duration string")
	}

	var total time.Duration
	for i := 0; i < len(s); {
		start := i
		if s[i] == '-' || s[i] == '+' {
			i++
		}
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		numStr := s[start:i]
		if numStr == "" || numStr == "-" || numStr == "+" {
			return 0, errors.New("invalid duration: " + s)
		}
		num, err := strconv.ParseInt(numStr, 10, 64)
		if err != nil {
			return 0, err
		}

		if i >= len(s) {
			return 0, errors.New("missing unit in duration: " + s)
		}
		unit, err := durationUnit(s[i:])
		if err != nil {
			return 0, errors.New(err.Error() + " in duration " + s)
		}
		i += len(unit.name)
		total += time.Duration(num) * unit.size
	}
	return total, nil
}

type durationUnitDef struct {
	name string
	size time.Duration
}

var units = map[string]durationUnitDef{
	"ms": {"ms", time.Millisecond},
	"s":  {"s", time.Second},
	"m":  {"m", time.Minute},
	"h":  {"h", time.Hour},
	"d":  {"d", 24 * time.Hour},
	"w":  {"w", 7 * 24 * time.Hour},
}

func durationUnit(rest string) (durationUnitDef, error) {
	if strings.HasPrefix(rest, "ms") {
		return units["ms"], nil
	}
	if unit, ok := units[rest[:1]]; ok {
		return unit, nil
	}
	return durationUnitDef{}, errors.New("unknown unit " + rest[:1])
}
