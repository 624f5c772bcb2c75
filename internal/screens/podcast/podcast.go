// Package podcast is the Podcast tab.
package podcast

import (
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/memoriaviva/memoria/internal/podcast"
	"github.com/memoriaviva/memoria/internal/screen"
	"github.com/memoriaviva/memoria/internal/ui/components"
	"github.com/memoriaviva/memoria/internal/ui/layout"
	"github.com/memoriaviva/memoria/internal/ui/theme"
)

// PodcastScreen shows the player and, in admin mode, a path field to load
// an episode.
type PodcastScreen struct {
	player  *podcast.Player
	input   components.TextInput
	editing bool
	errMsg  string
}

var _ screen.Screen = (*PodcastScreen)(nil)
var _ screen.KeyHintProvider = (*PodcastScreen)(nil)
var _ screen.InputCapturer = (*PodcastScreen)(nil)

func New(player *podcast.Player) *PodcastScreen {
	return &PodcastScreen{
		player: player,
		input:  components.NewTextInput("/ruta/al/episodio.mp3", 512),
	}
}

func (s *PodcastScreen) Init() tea.Cmd  { return nil }
func (s *PodcastScreen) Title() string  { return "Podcast" }
func (s *PodcastScreen) Capturing() bool { return s.editing }

func (s *PodcastScreen) KeyHints() []layout.KeyHint {
	if s.editing {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Cargar"},
			{Key: "Esc", Description: "Cancelar"},
		}
	}
	hints := []layout.KeyHint{{Key: "Espacio", Description: "Reproducir/Pausa"}}
	if s.player.Admin {
		hints = append(hints, layout.KeyHint{Key: "U", Description: "Subir episodio"})
	}
	return append(hints, layout.KeyHint{Key: "A", Description: "Acceso Admin"})
}

func (s *PodcastScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		if s.editing {
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	if s.editing {
		return s.handleEditKey(kmsg)
	}

	switch kmsg.String() {
	case "space", "enter", "p":
		s.player.TogglePlay()
	case "a":
		s.player.ToggleAdmin()
		s.errMsg = ""
	case "u":
		if s.player.Admin {
			s.editing = true
			s.errMsg = ""
			s.input.Reset()
			return s, s.input.Focus()
		}
	}
	return s, nil
}

func (s *PodcastScreen) handleEditKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.editing = false
		s.input.Blur()
		return s, nil
	case "enter":
		path := strings.TrimSpace(s.input.Value())
		if err := s.player.SetAudio(path); err != nil {
			s.input.Submit(false)
			s.errMsg = describe(err)
			return s, nil
		}
		s.input.Submit(true)
		s.editing = false
		s.errMsg = ""
		s.input.Blur()
		return s, nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func describe(err error) string {
	switch {
	case errors.Is(err, podcast.ErrNotAdmin):
		return "Activa el modo admin para subir episodios."
	case errors.Is(err, podcast.ErrUnsupportedAudio):
		return "Formato no soportado (MP3, WAV, OGG, M4A, FLAC)."
	}
	return "No se pudo abrir el archivo."
}

func (s *PodcastScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	p := s.player

	heading := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Podcast Educativo"),
		theme.Hint.Render("Memoria Sonora"),
	)

	icon := "♪"
	state := theme.Dimmed.Render("Sin episodio cargado")
	switch {
	case p.Playing:
		icon = "▶"
		state = theme.Correct.Render("Reproduciendo")
	case p.HasAudio():
		icon = "❚❚"
		state = theme.Dimmed.Render("En pausa")
	}

	player := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(icon),
		"",
		theme.Body.Bold(true).Render(p.Title),
		theme.Subtitle.Render("Escucha el análisis histórico y reflexiona sobre los hechos."),
		"",
		components.NewProgressBar("", boolInt(p.Playing), 1, cw-8).View(),
		state,
	)

	admin := theme.Dimmed.Render("🔒 Acceso Admin")
	if p.Admin {
		admin = lipgloss.NewStyle().Foreground(theme.Accent).Render("🔓 Modo Admin Activo")
	}

	sections := []string{heading, "", components.Card(lipgloss.PlaceHorizontal(cw-6, lipgloss.Center, player), cw), admin}
	if s.editing {
		sections = append(sections, "", theme.Body.Render("Subir episodio (MP3 • WAV)"), s.input.View())
	}
	if s.errMsg != "" {
		sections = append(sections, theme.Incorrect.Render(s.errMsg))
	}
	return components.Centered(lipgloss.JoinVertical(lipgloss.Center, sections...), width, height)
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
