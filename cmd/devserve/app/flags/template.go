/*
Copyright 2026 The Devserve Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package flags

import (
	"bytes"
	"encoding/json"
	"strings"
	"text/template"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

// TemplateFlag is a go-template command line flag used to format output.
type TemplateFlag struct {
	rawTemplate string
	template    *template.Template
}

func NewTemplateFlag(value string) *TemplateFlag {
	return &TemplateFlag{
		rawTemplate: value,
		template:    template.Must(parseTemplate(value)),
	}
}

func (t *TemplateFlag) String() string {
	return t.rawTemplate
}

func (t *TemplateFlag) Usage() string {
	return "Format output with go-template."
}

func (t *TemplateFlag) Set(value string) error {
	tmpl, err := parseTemplate(value)
	if err != nil {
		return errors.Wrap(err, "setting template flag")
	}
	t.rawTemplate = value
	t.template = tmpl
	return nil
}

func (t *TemplateFlag) Type() string {
	return "template"
}

func (t *TemplateFlag) Template() *template.Template {
	return t.template
}

func parseTemplate(value string) (*template.Template, error) {
	funcs := template.FuncMap{
		"json": func(v interface{}) string {
			buf := &bytes.Buffer{}
			enc := json.NewEncoder(buf)
			enc.SetEscapeHTML(false)
			enc.Encode(v)
			return strings.TrimSpace(buf.String())
		},
		"bytes": func(n int64) string { return humanize.Bytes(uint64(n)) },
		"join":  strings.Join,
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
	}

	return template.New("flagtemplate").Funcs(funcs).Parse(value)
}
