package descriptor

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"text/template"
)

const pomTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<project xmlns="http://maven.apache.org/POM/4.0.0" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xsi:schemaLocation="http://maven.apache.org/POM/4.0.0 https://maven.apache.org/xsd/maven-4.0.0.xsd">
  <modelVersion>{{xml .ModelVersion}}</modelVersion>
  <groupId>{{xml .GroupID}}</groupId>
  <artifactId>{{xml .ArtifactID}}</artifactId>
  <version>{{xml .Version}}</version>
{{- if .Name}}
  <name>{{xml .Name}}</name>
{{- end}}
{{- if .Description}}
  <description>{{xml .Description}}</description>
{{- end}}
{{- if .Dependencies}}
  <dependencies>
{{- range .Dependencies}}
    <dependency>
      <groupId>{{xml .GroupID}}</groupId>
      <artifactId>{{xml .ArtifactID}}</artifactId>
      <version>{{xml .Version}}</version>
{{- if .Scope}}
      <scope>{{xml .Scope}}</scope>
{{- end}}
    </dependency>
{{- end}}
  </dependencies>
{{- end}}
</project>
`

var pomTmpl = template.Must(template.New("pom").Funcs(template.FuncMap{
	"xml": escapeXML,
}).Parse(pomTemplate))

// Render writes m as a pom.xml document.
func Render(w io.Writer, m *Model) error {
	if err := pomTmpl.Execute(w, m); err != nil {
		return fmt.Errorf("rendering descriptor %s: %w", m.Coordinates(), err)
	}

	return nil
}

// RenderBytes renders m into memory.
func RenderBytes(m *Model) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(&buf, m); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func escapeXML(s string) (string, error) {
	var b strings.Builder
	if err := xml.EscapeText(&b, []byte(s)); err != nil {
		return "", err
	}

	return b.String(), nil
}
