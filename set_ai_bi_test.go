//go:build (Ai && Bi) || icondata_all

package icondata

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"testing"
)

func TestAiProjection(t *testing.T) {
	icon := FromAi(AiFileImageTwotone)

	if icon.Set() != Ai {
		t.Errorf("Set() = %v, want Ai", icon.Set())
	}

	data := Data(icon)
	if v, ok := data.ViewBox.Get(); !ok || v != "0 0 1024 1024" {
		t.Errorf("ViewBox = %v, want 0 0 1024 1024", data.ViewBox)
	}
	if data.Data == "" {
		t.Error("Data is empty")
	}
	if data != AiFileImageTwotone.IconData() {
		t.Error("projection through the selector differs from the enumeration")
	}
}

// The shorthand icon(AiFileImageTwotone) expands to a plain conversion.
func TestShorthandExpansionEqualsWidening(t *testing.T) {
	expanded := Icon(AiFileImageTwotone)
	if expanded != FromAi(AiFileImageTwotone) {
		t.Error("expansion differs from FromAi")
	}
	if Compare(expanded, FromAi(AiFileImageTwotone)) != 0 {
		t.Error("Compare should report equal icons")
	}
}

func TestSetOrdering(t *testing.T) {
	ai := FromAi(AiSearchOutlined)
	bi := FromBi(BiHeartSolid)
	custom := FromCustom(CustomIcon{})

	if Compare(ai, bi) >= 0 {
		t.Error("Ai should order before Bi regardless of payload")
	}
	if Compare(bi, custom) >= 0 {
		t.Error("Bi should order before Custom")
	}

	icons := []Icon{custom, bi, FromAi(AiFileImageTwotone), ai, FromAi(AiCloseOutlined)}
	slices.SortFunc(icons, Compare)

	want := []Icon{FromAi(AiCloseOutlined), FromAi(AiFileImageTwotone), ai, bi, custom}
	if !slices.Equal(icons, want) {
		t.Errorf("sorted = %v, want %v", icons, want)
	}
}

func TestArmDiscrimination(t *testing.T) {
	icon := FromBi(BiHomeRegular)

	if _, ok := As[AiIcon](icon); ok {
		t.Error("Bi icon matched the Ai arm")
	}
	v, ok := As[BiIcon](icon)
	if !ok || v != BiHomeRegular {
		t.Errorf("As[BiIcon]() = %v, %v", v, ok)
	}

	// Same ordinal in different sets must not be equal.
	if Icon(AiIcon(0)) == Icon(BiIcon(0)) {
		t.Error("icons of different sets compared equal")
	}

	var name string
	switch v := icon.(type) {
	case AiIcon:
		name = "ai"
	case BiIcon:
		name = v.String()
	default:
		name = "other"
	}
	if name != "BiHomeRegular" {
		t.Errorf("type switch picked %q", name)
	}
}

func TestParseEnabledSet(t *testing.T) {
	icon, err := Parse(Ai, "AiFileImageTwotone")
	if err != nil {
		t.Fatal(err)
	}
	if icon != FromAi(AiFileImageTwotone) {
		t.Errorf("Parse() = %v", icon)
	}

	_, err = Parse(Ai, "BiHeartSolid")
	if !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("Parse(Ai, BiHeartSolid) error = %v, want ErrUnknownVariant", err)
	}
}

func TestEnabledIncludesGatedSets(t *testing.T) {
	sets := Enabled()
	if !slices.Contains(sets, Ai) || !slices.Contains(sets, Bi) {
		t.Errorf("Enabled() = %v, want Ai and Bi", sets)
	}
	if got := slices.Index(sets, Ai); got != 0 {
		t.Errorf("Ai at index %d, want 0", got)
	}
}

func TestUndeclaredValue(t *testing.T) {
	bogus := AiIcon(60000)
	if got := Data(bogus); got != (IconData{}) {
		t.Errorf("Data(undeclared) = %+v, want zero record", got)
	}
	if got := fmt.Sprint(bogus); got != "AiIcon(60000)" {
		t.Errorf("String() = %q", got)
	}
}

func TestRegisterTwicePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("registering Ai twice did not panic")
		}
	}()
	registerEnum(Source{Name: "Ant Design Icons"}, func(string) (AiIcon, error) { return 0, nil }, func() iter.Seq[AiIcon] {
		return func(func(AiIcon) bool) {}
	})
}
