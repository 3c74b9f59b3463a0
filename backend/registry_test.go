package backend

import (
	"errors"
	"testing"

	"github.com/qdgfx/qd"
)

// stubDriver is a minimal qd.Driver for registry tests.
type stubDriver struct {
	name string
}

func (d *stubDriver) Clear(qd.Color)                                 {}
func (d *stubDriver) FillPolygon([]qd.Point, qd.Color)               {}
func (d *stubDriver) FillRect(x, y, w, h float64, c qd.Color)        {}
func (d *stubDriver) DrawPoints([]qd.Point, float64, qd.Color, bool) {}
func (d *stubDriver) DrawLines([]qd.Point, float64, qd.Color, bool)  {}
func (d *stubDriver) Flush() error                                   { return nil }
func (d *stubDriver) Close() error                                   { return nil }

func stubFactory(name string) DriverFactory {
	return func(width, height int) (qd.Driver, error) {
		return &stubDriver{name: name}, nil
	}
}

func TestRegistry_PrioritySelection(t *testing.T) {
	r := NewRegistry()
	r.Register("low", 10, stubFactory("low"), nil)
	r.Register("high", 100, stubFactory("high"), nil)

	d, err := r.New(10, 10)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := d.(*stubDriver).name; got != "high" {
		t.Errorf("selected %q, want high", got)
	}
}

func TestRegistry_SkipsUnavailable(t *testing.T) {
	r := NewRegistry()
	r.Register("low", 10, stubFactory("low"), nil)
	r.Register("high", 100, stubFactory("high"), func() bool { return false })

	d, err := r.New(10, 10)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := d.(*stubDriver).name; got != "low" {
		t.Errorf("selected %q, want low", got)
	}
}

func TestRegistry_FallsBackOnFactoryError(t *testing.T) {
	r := NewRegistry()
	r.Register("low", 10, stubFactory("low"), nil)
	r.Register("broken", 100, func(w, h int) (qd.Driver, error) {
		return nil, errors.New("boom")
	}, nil)

	d, err := r.New(10, 10)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := d.(*stubDriver).name; got != "low" {
		t.Errorf("selected %q, want low", got)
	}
}

func TestRegistry_NewByName(t *testing.T) {
	r := NewRegistry()
	r.Register("only", 10, stubFactory("only"), nil)

	if _, err := r.NewByName("only", 10, 10); err != nil {
		t.Errorf("NewByName: %v", err)
	}

	var notFound *DriverNotFoundError
	_, err := r.NewByName("missing", 10, 10)
	if !errors.As(err, &notFound) {
		t.Errorf("err = %v, want DriverNotFoundError", err)
	}

	r.Register("off", 10, stubFactory("off"), func() bool { return false })
	var unavailable *DriverUnavailableError
	_, err = r.NewByName("off", 10, 10)
	if !errors.As(err, &unavailable) {
		t.Errorf("err = %v, want DriverUnavailableError", err)
	}
}

func TestRegistry_Empty(t *testing.T) {
	r := NewRegistry()
	if _, err := r.New(10, 10); !errors.Is(err, ErrNoDriverAvailable) {
		t.Errorf("err = %v, want ErrNoDriverAvailable", err)
	}
}

func TestRegistry_ListAndUnregister(t *testing.T) {
	r := NewRegistry()
	r.Register("a", 10, stubFactory("a"), nil)
	r.Register("b", 50, stubFactory("b"), nil)

	list := r.List()
	if len(list) != 2 || list[0] != "b" || list[1] != "a" {
		t.Errorf("List = %v, want [b a]", list)
	}

	r.Unregister("b")
	if list := r.List(); len(list) != 1 || list[0] != "a" {
		t.Errorf("List after Unregister = %v, want [a]", list)
	}
}

func TestGlobalRegistry_SoftwareDriver(t *testing.T) {
	d, err := NewByName(DriverSoftware, 12, 8)
	if err != nil {
		t.Fatalf("NewByName(software): %v", err)
	}
	defer d.Close()

	p, ok := d.(qd.PixmapProvider)
	if !ok {
		t.Fatal("software driver does not expose its pixmap")
	}
	if pm := p.Pixmap(); pm.Width() != 12 || pm.Height() != 8 {
		t.Errorf("pixmap %dx%d, want 12x8", pm.Width(), pm.Height())
	}
}
