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

package util

import (
	"log/slog"
	"os"
	"time"

	struct_logger "github.com/SENERGY-Platform/go-service-base/struct-logger"
)

var Logger *slog.Logger

func InitStructLogger(level string) {
	if Logger == nil {
		Logger = struct_logger.New(
			struct_logger.Config{
				Handler:    struct_logger.JsonHandlerSelector,
				Level:      level,
				TimeFormat: time.RFC3339Nano,
				TimeUtc:    true,
				AddMeta:    true,
			},
			os.Stderr,
			"SENERGY-Platform",
			"reportobello-client",
		)
	}
}

// GetLogger returns the structured logger, falling back to the slog default before InitStructLogger ran.
func GetLogger() *slog.Logger {
	if Logger == nil {
		return slog.Default()
	}
	return Logger
}
