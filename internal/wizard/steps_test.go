package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gsetup/internal/config"
)

func TestDefaultSteps_Order(t *testing.T) {
	steps := DefaultSteps(config.GetDefaultConfig())

	titles := make([]string, len(steps))
	for i, s := range steps {
		titles[i] = s.Title
	}
	assert.Equal(t, []string{
		"Create a project",
		"Enable the Google Drive API",
		"Enable the Google Sheets API",
		"Create a consent screen",
		"Create an OAuth client",
	}, titles)
}

func TestDefaultSteps_OneStepPerAPI(t *testing.T) {
	cfg := config.GetDefaultConfig()
	cfg.APIs = []config.API{{Name: "Gmail API", ID: "gmail.googleapis.com"}}

	steps := DefaultSteps(cfg)
	require.Len(t, steps, 4)
	assert.Equal(t, "Is the Gmail API enabled?", steps[1].Question)

	out, err := steps[1].Render(cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "https://console.developers.google.com/apis/library/gmail.googleapis.com")
}

func TestDefaultSteps_APIStepsDoNotAlias(t *testing.T) {
	steps := DefaultSteps(config.GetDefaultConfig())
	require.NotNil(t, steps[1].API)
	require.NotNil(t, steps[2].API)
	assert.Equal(t, "drive.googleapis.com", steps[1].API.ID)
	assert.Equal(t, "sheets.googleapis.com", steps[2].API.ID)
}

func TestStep_Render(t *testing.T) {
	cfg := config.GetDefaultConfig()
	steps := DefaultSteps(cfg)

	tests := []struct {
		name  string
		step  Step
		wants []string
	}{
		{
			name:  "project",
			step:  steps[0],
			wants: []string{"https://console.developers.google.com/projectcreate"},
		},
		{
			name:  "drive api",
			step:  steps[1],
			wants: []string{"Google Drive API", "https://console.developers.google.com/apis/library/drive.googleapis.com"},
		},
		{
			name:  "consent screen",
			step:  steps[3],
			wants: []string{"https://console.developers.google.com/apis/credentials/consent", `"Application name"`},
		},
		{
			name: "oauth client",
			step: steps[4],
			wants: []string{
				"https://console.developers.google.com/apis/credentials/oauthclient",
				"Application type: Web application",
				"Authorized redirect URIs: http://localhost:3888",
				"2 scopes",
				"https://www.googleapis.com/auth/drive",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.step.Render(cfg)
			require.NoError(t, err)
			for _, want := range tt.wants {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestStep_Render_RedirectURLFollowsConfig(t *testing.T) {
	cfg := config.GetDefaultConfig()
	cfg.RedirectURL = "http://localhost:9999/cb"
	cfg.Scopes = []string{"https://www.googleapis.com/auth/drive"}

	steps := DefaultSteps(cfg)
	out, err := steps[len(steps)-1].Render(cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "Authorized redirect URIs: http://localhost:9999/cb")
	assert.Contains(t, out, "1 scope:")
}

func TestStep_Render_Errors(t *testing.T) {
	cfg := config.GetDefaultConfig()

	_, err := Step{Title: "broken", Instructions: "{{ .Console "}.Render(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse instructions")

	_, err = Step{Title: "unknown field", Instructions: "{{ .Nope }}"}.Render(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to render instructions")
}
