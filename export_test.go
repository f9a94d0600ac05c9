package scanline

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestExportPDF(t *testing.T) {
	s := NewStore()
	if _, err := s.Create(PrimitiveLine, AlgorithmBresenham, LineParams(-50, -50, 50, 50),
		Red, StyleSolid, 2, 0); err != nil {
		t.Fatalf("Create line: %v", err)
	}
	if _, err := s.Create(PrimitiveCircle, AlgorithmMidpointCircle, CircleParams(0, 0, 40),
		Green, StyleSolid, 1, 0); err != nil {
		t.Fatalf("Create circle: %v", err)
	}
	if _, err := s.Create(PrimitiveEllipse, AlgorithmMidpointEllipse, EllipseParams(20, -30, 50, 25),
		Blue, StyleThick, 3, 0); err != nil {
		t.Fatalf("Create ellipse: %v", err)
	}

	path := filepath.Join(t.TempDir(), "scene.pdf")
	if err := ExportPDF(path, s, NewCanvas(400, 600)); err != nil {
		t.Fatalf("ExportPDF: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("exported PDF is empty")
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("exported file does not start with the PDF header: %q", data[:min(8, len(data))])
	}
}

func TestExportPDF_EmptyStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")
	if err := ExportPDF(path, NewStore(), NewCanvas(400, 600)); err != nil {
		t.Fatalf("ExportPDF on empty store: %v", err)
	}
	if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
		t.Errorf("empty-store export missing or zero-sized: %v", err)
	}
}
