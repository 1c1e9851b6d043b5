package ui

import (
	"strings"
	"testing"

	"github.com/sadsen/saad/internal/i18n"
)

func TestBuildSectionsCoversEveryAnchor(t *testing.T) {
	f := newFixture(t)
	secs := buildSections(f.locale, DefaultProfile())
	if len(secs) != len(sectionIDs) {
		t.Fatalf("expected %d sections, got %d", len(sectionIDs), len(secs))
	}
	for i, sec := range secs {
		if sec.id != sectionIDs[i] {
			t.Fatalf("section %d: expected %s, got %s", i, sectionIDs[i], sec.id)
		}
		if strings.TrimSpace(sec.body) == "" {
			t.Fatalf("section %s has no body", sec.id)
		}
	}
}

func TestSectionsListEveryItem(t *testing.T) {
	f := newFixture(t)
	body := projectsBody(f.locale)
	n := f.locale.Table().Count("projects.items")
	if n == 0 {
		t.Fatalf("expected projects in the table")
	}
	for i := 0; i < n; i++ {
		name := f.locale.T("projects.items." + string(rune('0'+i)) + ".name")
		if !strings.Contains(body, name) {
			t.Fatalf("project %q missing from body", name)
		}
	}
}

func TestSectionsRenderInBothLocales(t *testing.T) {
	catalog, err := i18n.LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	f := newFixture(t)
	for _, l := range i18n.Locales {
		if err := f.locale.SetLocale(l); err != nil {
			t.Fatalf("SetLocale(%s): %v", l, err)
		}
		hero := heroBody(f.locale, DefaultProfile())
		for _, nameLocale := range i18n.Locales {
			want, _ := catalog.Table(nameLocale).Lookup("hero.name")
			if !strings.Contains(hero, want) {
				t.Fatalf("%s hero missing %s name %q", l, nameLocale, want)
			}
		}
	}
}

func TestHeroListsEveryContact(t *testing.T) {
	f := newFixture(t)
	p := DefaultProfile()
	hero := heroBody(f.locale, p)
	for _, want := range []string{
		f.locale.T("hero.linkedin") + ": https://www.linkedin.com/in/s3dsu",
		f.locale.T("hero.email") + ": sa888e@gmail.com",
		f.locale.T("hero.phone") + ": 0571441777",
		f.locale.T("hero.resumeBtn") + ": " + p.Resume,
	} {
		if !strings.Contains(hero, want) {
			t.Fatalf("hero missing %q:\n%s", want, hero)
		}
	}
	linkedIn := strings.Index(hero, f.locale.T("hero.linkedin")+":")
	phone := strings.Index(hero, f.locale.T("hero.phone")+":")
	if linkedIn > phone {
		t.Fatalf("contacts out of order:\n%s", hero)
	}
}

func TestRenderPageStartsSectionsAtAnchors(t *testing.T) {
	f := newFixture(t)
	content, tops := f.app.renderPage(80)
	lines := strings.Split(content, "\n")
	for _, id := range sectionIDs[1:] {
		top := tops[id]
		if top >= len(lines) {
			t.Fatalf("anchor %s beyond content", id)
		}
		window := strings.Join(lines[top:min(top+3, len(lines))], "\n")
		title := f.locale.T(sectionTitleKey(id))
		if !strings.Contains(window, title) {
			t.Fatalf("section %s: expected %q near line %d, got %q", id, title, top, window)
		}
	}
}

func sectionTitleKey(id string) string {
	if id == SectionContact {
		return "footer.title"
	}
	return id + ".title"
}
