package refdata

import (
	"context"
	"testing"

	"github.com/example/annex7/internal/models"
)

func TestProvider_WasteCodes(t *testing.T) {
	p := NewProvider()
	ctx := context.Background()

	for _, category := range []models.WasteCodeType{
		models.WasteCodeBaselAnnexIX,
		models.WasteCodeOECD,
		models.WasteCodeAnnexIIIA,
		models.WasteCodeAnnexIIIB,
	} {
		entries, err := p.WasteCodes(ctx, category)
		if err != nil {
			t.Fatalf("WasteCodes(%s) error = %v", category, err)
		}
		if len(entries) == 0 {
			t.Errorf("WasteCodes(%s) is empty", category)
		}
	}

	entries, err := p.WasteCodes(ctx, models.WasteCodeNotApplicable)
	if err != nil {
		t.Fatalf("WasteCodes(NotApplicable) error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("small waste carries no code list, got %d entries", len(entries))
	}
}

func TestProvider_Countries(t *testing.T) {
	p := NewProvider()
	ctx := context.Background()

	without, err := p.Countries(ctx, false)
	if err != nil {
		t.Fatalf("Countries(false) error = %v", err)
	}
	for _, c := range without {
		if c == "United Kingdom" {
			t.Fatal("destination list must not contain the United Kingdom")
		}
	}

	with, err := p.Countries(ctx, true)
	if err != nil {
		t.Fatalf("Countries(true) error = %v", err)
	}
	if len(with) != len(without)+1 || with[0] != "United Kingdom" {
		t.Errorf("UK-inclusive list = %d entries, first %q", len(with), with[0])
	}
}

func TestProvider_OperationCodes(t *testing.T) {
	p := NewProvider()
	ctx := context.Background()

	recovery, err := p.RecoveryCodes(ctx)
	if err != nil {
		t.Fatalf("RecoveryCodes() error = %v", err)
	}
	if len(recovery) == 0 || recovery[0].Code[0] != 'R' {
		t.Errorf("recovery codes = %+v", recovery)
	}

	disposal, err := p.DisposalCodes(ctx)
	if err != nil {
		t.Fatalf("DisposalCodes() error = %v", err)
	}
	if len(disposal) == 0 || disposal[0].Code[0] != 'D' {
		t.Errorf("disposal codes = %+v", disposal)
	}
}
