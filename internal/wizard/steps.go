package wizard

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"gsetup/internal/config"
)

// Step is one manual action the operator performs in the Google Cloud
// console before the handshake can start.
type Step struct {
	// Title is printed as the step heading.
	Title string
	// Instructions is a text/template body. It is executed with a
	// StepData value and has the sprig function map available.
	Instructions string
	// Question is asked once the instructions are shown. A "no" answer
	// ends the setup.
	Question string
	// API is set for the steps that enable an API.
	API *config.API
}

// StepData is the value step instructions are rendered with.
type StepData struct {
	Config  config.Config
	Console string
	API     config.API
}

const projectInstructions = `To create a new Google project go to:

{{ .Console }}/projectcreate`

const apiInstructions = `To enable the {{ .API.Name }} go to:

{{ .API.LibraryURL }}`

const consentInstructions = `To create a consent screen go to:

{{ .Console }}/apis/credentials/consent

Choose Create (internal or external), then only the {{ "Application name" | quote }} is mandatory.`

const oauthClientInstructions = `To create an OAuth client go to:

{{ .Console }}/apis/credentials/oauthclient

Choose:
- Application type: Web application
- Authorized redirect URIs: {{ .Config.RedirectURL }}
{{- with .Config.Scopes }}

The client will be asked for {{ len . }} {{ if eq (len .) 1 }}scope{{ else }}scopes{{ end }}:
{{- range . }}
  {{ . }}
{{- end }}
{{- end }}`

// DefaultSteps returns the console steps in the order they must be done:
// project, one step per configured API, consent screen and OAuth client.
func DefaultSteps(cfg config.Config) []Step {
	steps := []Step{{
		Title:        "Create a project",
		Instructions: projectInstructions,
		Question:     "Is the project created?",
	}}

	for i := range cfg.APIs {
		api := cfg.APIs[i]
		steps = append(steps, Step{
			Title:        "Enable the " + api.Name,
			Instructions: apiInstructions,
			Question:     fmt.Sprintf("Is the %s enabled?", api.Name),
			API:          &api,
		})
	}

	return append(steps,
		Step{
			Title:        "Create a consent screen",
			Instructions: consentInstructions,
			Question:     "Is the consent screen created?",
		},
		Step{
			Title:        "Create an OAuth client",
			Instructions: oauthClientInstructions,
			Question:     "Is the OAuth client created?",
		},
	)
}

// Render executes the step instructions against cfg.
func (s Step) Render(cfg config.Config) (string, error) {
	tmpl, err := template.New(s.Title).
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		Parse(s.Instructions)
	if err != nil {
		return "", fmt.Errorf("failed to parse instructions for step %q: %w", s.Title, err)
	}

	data := StepData{Config: cfg, Console: config.ConsoleBaseURL}
	if s.API != nil {
		data.API = *s.API
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render instructions for step %q: %w", s.Title, err)
	}
	return buf.String(), nil
}
