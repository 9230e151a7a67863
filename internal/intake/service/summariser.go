package service

import (
	"strings"

	"casedesk/internal/intake/model"
	wsmodel "casedesk/internal/workspace/model"
)

// Summariser turns the free-text intake into a prefilled detail form.
type Summariser interface {
	Summarise(description string, files []string) model.DetailForm
}

const summaryLimit = 280

// StubSummariser fills the form from the description without any analysis.
type StubSummariser struct{}

func (StubSummariser) Summarise(description string, files []string) model.DetailForm {
	form := model.DetailForm{
		Status: wsmodel.DefaultStatus,
	}
	form.CaseType = wsmodel.CaseTypeCriminal
	form.Summary = truncate(collapseSpace(description), summaryLimit)
	form.Facts = collapseSpace(description)
	form.Victims = "None Reported"
	return form
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit]) + "..."
}

// fillBlank copies every field of src into dst that dst leaves empty,
// so text the user already typed survives a second summarise.
func fillBlank(dst *model.DetailForm, src model.DetailForm) {
	for _, f := range []struct {
		dst *string
		src string
	}{
		{&dst.Name, src.Name},
		{&dst.Client, src.Client},
		{&dst.Status, src.Status},
		{&dst.CaseType, src.CaseType},
		{&dst.Companies, src.Companies},
		{&dst.Summary, src.Summary},
		{&dst.Accused, src.Accused},
		{&dst.Victims, src.Victims},
		{&dst.Allegations, src.Allegations},
		{&dst.Facts, src.Facts},
		{&dst.IncidentDate, src.IncidentDate},
		{&dst.RepresentedBy, src.RepresentedBy},
	} {
		if strings.TrimSpace(*f.dst) == "" {
			*f.dst = f.src
		}
	}
}
