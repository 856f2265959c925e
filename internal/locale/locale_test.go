package locale

import (
	"slices"
	"testing"
)

func TestTranslator(t *testing.T) {
	vi := New(Vietnamese)
	en := New(English)

	if got := vi.T("unpin_all"); got != "Bỏ tất cả ghim" {
		t.Errorf("vi unpin_all = %q", got)
	}
	if got := en.T("unpin_all"); got != "Unpin all" {
		t.Errorf("en unpin_all = %q", got)
	}
	if got := en.T("title"); got != AppTitle {
		t.Errorf("en title = %q", got)
	}
}

func TestTranslator_Template(t *testing.T) {
	en := New(English)
	got := en.Tf("hotkey_label", map[string]any{"Pin": "ctrl+shift+p", "Unpin": "ctrl+shift+u"})
	want := "Hotkey: Pin [ctrl+shift+p] | Unpin [ctrl+shift+u]"
	if got != want {
		t.Errorf("hotkey_label = %q, want %q", got, want)
	}
}

func TestTranslator_UnknownIDFallsBack(t *testing.T) {
	if got := New(English).T("no_such_message"); got != "no_such_message" {
		t.Errorf("unknown id = %q", got)
	}
}

func TestTranslator_InvalidLanguageDefaultsToVietnamese(t *testing.T) {
	tr := New("fr")
	if tr.Language() != Vietnamese {
		t.Fatalf("Language() = %q", tr.Language())
	}
	if got := tr.T("menu_exit"); got != "Thoát" {
		t.Errorf("menu_exit = %q", got)
	}
}

func TestCatalogsHaveSameIDs(t *testing.T) {
	ids := func(lang string) []string {
		var out []string
		src := vi
		if lang == "en" {
			src = en
		}
		for _, m := range src {
			out = append(out, m.ID)
		}
		slices.Sort(out)
		return out
	}
	if !slices.Equal(ids("vi"), ids("en")) {
		t.Fatalf("vi and en catalogs differ:\nvi=%v\nen=%v", ids("vi"), ids("en"))
	}
}

func TestDialogTitles(t *testing.T) {
	titles := DialogTitles()
	for _, want := range []string{"Settings", "Cài đặt", "About", "Thông tin phần mềm"} {
		if !slices.Contains(titles, want) {
			t.Errorf("DialogTitles() missing %q: %v", want, titles)
		}
	}
}
