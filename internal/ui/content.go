package ui

import (
	"fmt"
	"strings"

	"github.com/sadsen/saad/internal/i18n"
)

// Section anchors, in nav order.
const (
	SectionHome           = "home"
	SectionExperience     = "experience"
	SectionProjects       = "projects"
	SectionCertifications = "certifications"
	SectionContact        = "contact"
)

var sectionIDs = [...]string{
	SectionHome,
	SectionExperience,
	SectionProjects,
	SectionCertifications,
	SectionContact,
}

// Profile is the contact data that is not translated.
type Profile struct {
	// Name and LatinName are both shown in every locale.
	Name      string
	LatinName string
	Email     string
	Phone     string
	LinkedIn  string
	// Resume is the CV asset path as published next to the site.
	Resume string
}

// DefaultProfile returns the portfolio owner's contact details.
func DefaultProfile() Profile {
	return Profile{
		Name:      "سعد فهيد",
		LatinName: "Saad Fuhaid",
		Email:     "sa888e@gmail.com",
		Phone:     "0571441777",
		LinkedIn:  "https://www.linkedin.com/in/s3dsu",
		Resume:    "cv.pdf",
	}
}

// section is one block of the scrolling page before styling.
type section struct {
	id    string
	title string
	body  string // markdown
}

// translator is the subset of the locale controller sections read from.
type translator interface {
	T(path string) string
	Table() *i18n.Table
}

// buildSections assembles the page in nav order. Every label comes from the
// active table; only the profile is locale-independent.
func buildSections(tr translator, p Profile) []section {
	return []section{
		{id: SectionHome, body: heroBody(tr, p)},
		{id: SectionExperience, title: tr.T("experience.title"), body: experienceBody(tr)},
		{id: SectionProjects, title: tr.T("projects.title"), body: projectsBody(tr)},
		{id: SectionCertifications, title: tr.T("certifications.title"), body: certificationsBody(tr)},
		{id: SectionContact, title: tr.T("footer.title"), body: contactBody(tr, p)},
	}
}

func heroBody(tr translator, p Profile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", p.Name)
	fmt.Fprintf(&b, "### %s\n\n", p.LatinName)
	fmt.Fprintf(&b, "**%s**\n\n", tr.T("hero.role"))
	fmt.Fprintf(&b, "%s\n\n", tr.T("hero.bio"))
	fmt.Fprintf(&b, "📍 %s\n\n", tr.T("hero.location"))
	fmt.Fprintf(&b, "- %s: %s\n", tr.T("hero.linkedin"), p.LinkedIn)
	fmt.Fprintf(&b, "- %s: %s\n", tr.T("hero.email"), p.Email)
	fmt.Fprintf(&b, "- %s: %s\n", tr.T("hero.phone"), p.Phone)
	fmt.Fprintf(&b, "- %s: %s\n", tr.T("hero.resumeBtn"), p.Resume)
	return b.String()
}

func experienceBody(tr translator) string {
	var b strings.Builder
	n := tr.Table().Count("experience.items")
	for i := 0; i < n; i++ {
		base := fmt.Sprintf("experience.items.%d.", i)
		fmt.Fprintf(&b, "### %s\n\n", tr.T(base+"role"))
		fmt.Fprintf(&b, "*%s · %s*\n\n", tr.T(base+"org"), tr.T(base+"period"))
		fmt.Fprintf(&b, "%s\n\n", tr.T(base+"summary"))
	}
	return b.String()
}

func projectsBody(tr translator) string {
	var b strings.Builder
	n := tr.Table().Count("projects.items")
	for i := 0; i < n; i++ {
		base := fmt.Sprintf("projects.items.%d.", i)
		fmt.Fprintf(&b, "### %s\n\n", tr.T(base+"name"))
		fmt.Fprintf(&b, "%s\n\n", tr.T(base+"summary"))
		fmt.Fprintf(&b, "`%s`\n\n", tr.T(base+"stack"))
	}
	return b.String()
}

func certificationsBody(tr translator) string {
	var b strings.Builder
	n := tr.Table().Count("certifications.items")
	for i := 0; i < n; i++ {
		base := fmt.Sprintf("certifications.items.%d.", i)
		fmt.Fprintf(&b, "- **%s** · %s\n", tr.T(base+"name"), tr.T(base+"issuer"))
	}
	return b.String()
}

func contactBody(tr translator, p Profile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", tr.T("footer.body"))
	fmt.Fprintf(&b, "- %s: %s\n", tr.T("hero.email"), p.Email)
	fmt.Fprintf(&b, "- %s: %s\n", tr.T("hero.phone"), p.Phone)
	fmt.Fprintf(&b, "- %s: %s\n\n", tr.T("hero.linkedin"), p.LinkedIn)
	fmt.Fprintf(&b, "*%s*\n\n", tr.T("footer.copyHint"))
	fmt.Fprintf(&b, "© %s %s", tr.T("hero.name"), tr.T("footer.rights"))
	return b.String()
}
