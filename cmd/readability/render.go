package main

import (
	"fmt"
	"io"
	"strconv"

	readability "github.com/baditaflorin/go_readability"
	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

var statusStyles = map[readability.Status]color.Style{
	"good":    color.New(color.FgGreen),
	"warning": color.New(color.FgYellow),
	"poor":    color.New(color.FgRed, color.OpBold),
}

func colourStatus(s readability.Status) string {
	if style, ok := statusStyles[s]; ok {
		return style.Render(string(s))
	}
	return string(s)
}

func renderText(w io.Writer, r readability.Report, verbose bool) {
	title := color.New(color.FgCyan, color.OpBold)
	fmt.Fprintln(w, title.Render("=== Readability Report ==="))

	if r.Error != "" {
		fmt.Fprintf(w, "%s %s\n", color.New(color.FgRed).Render("Error:"), r.Error)
		return
	}

	fmt.Fprintf(w, "Score: %d/100  Level: %s  Audience: %s\n\n", r.Score, r.Level, r.Audience)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Metric", "Value", "Status"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	table.Append([]string{"Flesch Reading Ease", strconv.Itoa(r.FleschScore), ""})
	table.Append([]string{"Flesch-Kincaid Grade", fmt.Sprintf("%.1f", r.FleschKincaidGrade), ""})
	table.Append([]string{"Coleman-Liau Index", fmt.Sprintf("%.1f", r.ColemanLiauIndex), ""})
	table.Append([]string{"LIX", strconv.Itoa(r.LixScore), ""})
	table.Append([]string{"Words", strconv.Itoa(r.WordCount), ""})
	table.Append([]string{"Sentences", strconv.Itoa(r.SentenceCount), colourStatus(r.Sentences.Status)})
	table.Append([]string{"Paragraphs", strconv.Itoa(r.ParagraphCount), colourStatus(r.Paragraphs.Status)})
	table.Append([]string{"Words per sentence", fmt.Sprintf("%.1f", r.AverageWordsPerSentence), ""})
	table.Append([]string{"Reading time", fmt.Sprintf("%d min", r.ReadingTime), ""})
	table.Append([]string{"Difficult words", fmt.Sprintf("%d (%.1f%%)", r.DifficultWords.Count, r.DifficultWords.Percentage), ""})
	table.Append([]string{"Passive voice", fmt.Sprintf("%.1f%%", r.PassiveVoice.Percentage), colourStatus(r.PassiveVoice.Status)})
	table.Append([]string{"Transitions", fmt.Sprintf("%.1f%%", r.TransitionalWords.Percentage), colourStatus(r.TransitionalWords.Status)})
	table.Append([]string{"Sentiment", fmt.Sprintf("%s (%d)", r.Sentiment.Label, r.Sentiment.Score), ""})
	table.Append([]string{"Inclusivity", strconv.Itoa(r.Inclusivity.Score), ""})
	table.Render()

	if len(r.Recommendations) > 0 {
		fmt.Fprintln(w, "\nRecommendations:")
		for _, rec := range r.Recommendations {
			marker := color.New(color.FgYellow).Render("!")
			if rec.Type == "error" {
				marker = color.New(color.FgRed).Render("x")
			}
			fmt.Fprintf(w, "  %s %s\n", marker, rec.Message)
		}
	}

	if !verbose {
		return
	}

	if len(r.SimplificationSuggestions) > 0 {
		fmt.Fprintln(w, "\nSimpler alternatives:")
		for _, s := range r.SimplificationSuggestions {
			fmt.Fprintf(w, "  %s -> %s\n", s.Word, s.Suggestion)
		}
	}
	if len(r.Inclusivity.Issues) > 0 {
		fmt.Fprintln(w, "\nInclusive language:")
		for _, issue := range r.Inclusivity.Issues {
			fmt.Fprintf(w, "  %s (x%d, %s) -> %s\n", issue.Term, issue.Count, issue.Category, issue.Suggestion)
		}
	}
	if len(r.KeywordDensity.Keywords) > 0 {
		fmt.Fprintf(w, "\nKeywords: %v\n", r.KeywordDensity.Keywords)
		for _, e := range r.KeywordDensity.Heatmap {
			fmt.Fprintf(w, "  #%d %.1f%% (%d/%d)\n", e.ID, e.Density, e.Matches, e.WordCount)
		}
	}
	if len(r.Heatmap) > 0 {
		fmt.Fprintln(w, "\nParagraph heatmap:")
		for _, e := range r.Heatmap {
			fmt.Fprintf(w, "  #%d %3d %s\n", e.ID, e.Score, colourStatus(e.Status))
		}
	}
}
