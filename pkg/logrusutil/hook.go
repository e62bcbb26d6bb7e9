// SPDX-FileCopyrightText: Copyright The Illustrator MCP Authors
// SPDX-License-Identifier: Apache-2.0

package logrusutil

import (
	"io"

	"github.com/sirupsen/logrus"
)

// JSONFileHook duplicates every log entry to w as a JSONFormatter line,
// while the standard logger keeps its terminal formatter. The serve command
// uses it so that `logs --follow` can re-render the file later.
type JSONFileHook struct {
	w         io.Writer
	formatter logrus.Formatter
}

var _ logrus.Hook = (*JSONFileHook)(nil)

func NewJSONFileHook(w io.Writer) *JSONFileHook {
	return &JSONFileHook{
		w:         w,
		formatter: &logrus.JSONFormatter{},
	}
}

func (h *JSONFileHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *JSONFileHook) Fire(entry *logrus.Entry) error {
	b, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}
	_, err = h.w.Write(b)
	return err
}
