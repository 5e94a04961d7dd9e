package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/hnrks/tidings/internal/news"
	"github.com/hnrks/tidings/internal/reltime"
)

// Fallbacks for articles the service returns with missing fields.
const (
	FallbackTitle       = "No title available"
	FallbackDescription = "No description available"
	FallbackSource      = "Unknown source"
	PlaceholderImageURL = "https://via.placeholder.com/600x400?text=No+Image"
)

func cardTitle(a news.Article) string {
	if strings.TrimSpace(a.Title) == "" {
		return FallbackTitle
	}
	return a.Title
}

func cardDescription(a news.Article) string {
	if desc := strings.TrimSpace(a.Description); desc != "" {
		return desc
	}
	if snippet := strings.TrimSpace(a.Snippet); snippet != "" {
		return snippet
	}
	return FallbackDescription
}

func cardSource(a news.Article) string {
	if strings.TrimSpace(a.Source) == "" {
		return FallbackSource
	}
	return a.Source
}

func cardImageURL(a news.Article) string {
	if strings.TrimSpace(a.ImageURL) == "" {
		return PlaceholderImageURL
	}
	return a.ImageURL
}

// cardMeta renders the "source • published" line of a card.
func cardMeta(a news.Article, now time.Time) string {
	meta := cardSource(a)
	if !a.PublishedAt.IsZero() {
		meta += " • " + reltime.Format(a.PublishedAt, now)
	}
	return meta
}

// articleItem adapts an Article to the bubbles list delegate.
type articleItem struct {
	article news.Article
}

func (i articleItem) Title() string {
	return CardTitleStyle.Render(cardTitle(i.article))
}

func (i articleItem) Description() string {
	desc := truncateEnd(cardDescription(i.article), 80)
	meta := TimeStyle.Render(" • " + cardMeta(i.article, time.Now()))
	return CardMetaStyle.Render(desc) + meta
}

func (i articleItem) FilterValue() string {
	return cardTitle(i.article) + " " + cardDescription(i.article)
}

// renderPlaceholders produces count skeleton cards with no data
// dependency, shown while a page is loading.
func renderPlaceholders(count, width int) string {
	if count <= 0 {
		count = 1
	}
	barWidth := width - 8
	if barWidth < 12 {
		barWidth = 12
	}
	if barWidth > 60 {
		barWidth = 60
	}

	title := PlaceholderStyle.Render(strings.Repeat("▇", barWidth/2))
	body := PlaceholderStyle.Render(strings.Repeat("░", barWidth))

	card := lipgloss.JoinVertical(lipgloss.Left, title, body, "")
	cards := make([]string, count)
	for i := range cards {
		cards[i] = card
	}

	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// renderEmptyState is shown when a page comes back with zero articles
// or after a failed fetch; pagination hints are suppressed alongside.
func renderEmptyState(width, height int) string {
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		TitleStyle.Render("No articles found"),
		"",
		HelpStyle.Render("Try a different search, language, or category."),
	)

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// articleMarkdown builds the reader-view document for one article.
func articleMarkdown(a news.Article, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", cardTitle(a))
	fmt.Fprintf(&b, "*%s*\n\n", cardMeta(a, now))

	if a.URL != "" {
		fmt.Fprintf(&b, "[Read online](%s)\n\n", a.URL)
	}
	fmt.Fprintf(&b, "![image](%s)\n\n", cardImageURL(a))

	if len(a.Categories) > 0 {
		fmt.Fprintf(&b, "**Categories:** %s\n\n", strings.Join(a.Categories, ", "))
	}

	b.WriteString("---\n\n")
	b.WriteString(cardDescription(a))
	if snippet := strings.TrimSpace(a.Snippet); snippet != "" && snippet != strings.TrimSpace(a.Description) {
		b.WriteString("\n\n")
		b.WriteString(snippet)
	}

	return b.String()
}
