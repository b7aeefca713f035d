package dcl

import (
	"bytes"
	"testing"
)

func TestAPIContract_HeaderOnFirstUpdate(t *testing.T) {
	c, err := NewCompressor(1024)
	if err != nil {
		t.Fatalf("NewCompressor failed: %v", err)
	}

	buf := make([]byte, c.MaxOutputBytes(0))
	n, err := c.Update(nil, buf, false)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if n != 2 || buf[0] != 0x00 || buf[1] != 0x04 {
		t.Fatalf("first update wrote % x, want 00 04", buf[:n])
	}

	// The header is written once.
	n, err = c.Update(nil, buf, false)
	if err != nil {
		t.Fatalf("second Update failed: %v", err)
	}
	if n != 0 {
		t.Fatalf("second empty update wrote %d bytes", n)
	}
}

func TestAPIContract_EndMarkerAlwaysPresent(t *testing.T) {
	for _, in := range testInputSet() {
		if len(in.data) > 100_000 {
			continue
		}
		cmp, err := Compress(in.data, nil)
		if err != nil {
			t.Fatalf("%s: Compress failed: %v", in.name, err)
		}

		// A stream with its end marker decodes cleanly; the same stream with
		// the final byte cut off cannot.
		if _, err := Decompress(cmp, nil); err != nil {
			t.Fatalf("%s: Decompress failed: %v", in.name, err)
		}
		if _, err := Decompress(cmp[:len(cmp)-1], nil); err == nil {
			t.Fatalf("%s: stream without its final byte decoded", in.name)
		}
	}
}

func TestAPIContract_DecompressorUpdateSuspendsOnPartialInput(t *testing.T) {
	data := bytes.Repeat([]byte("suspend and resume"), 50)
	cmp, err := Compress(data, nil)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	d := NewDecompressor()
	buf := make([]byte, len(data))

	// Half the stream without flush: no error, partial output at most.
	n1, err := d.Update(cmp[:len(cmp)/2], buf, false)
	if err != nil {
		t.Fatalf("partial Update failed: %v", err)
	}
	n2, err := d.Update(cmp[len(cmp)/2:], buf[n1:], true)
	if err != nil {
		t.Fatalf("final Update failed: %v", err)
	}
	if !bytes.Equal(buf[:n1+n2], data) {
		t.Fatal("suspend/resume output mismatch")
	}
}

func TestAPIContract_DecompressorReset(t *testing.T) {
	d := NewDecompressor()
	buf := make([]byte, 64)

	// Different headers across Reset: 1 KiB fixed, then 4 KiB fixed.
	for _, dictSize := range []int{1024, 4096} {
		data := bytes.Repeat([]byte("reset me"), 4)
		cmp, err := Compress(data, &CompressOptions{DictSize: dictSize})
		if err != nil {
			t.Fatalf("Compress failed: %v", err)
		}

		n, err := d.Update(cmp, buf, true)
		if err != nil {
			t.Fatalf("dict=%d Update failed: %v", dictSize, err)
		}
		if !bytes.Equal(buf[:n], data) {
			t.Fatalf("dict=%d decoded mismatch", dictSize)
		}
		d.Reset()
	}
}

func TestAPIContract_CompressorStateIndependentOfOutputBuffer(t *testing.T) {
	// Feeding the same bytes through differently sized updates must yield
	// one identical stream.
	data := bytes.Repeat([]byte("chunk size independence "), 100)

	whole, err := Compress(data, &CompressOptions{DictSize: 2048})
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	for _, step := range []int{1, 3, 17, 256} {
		c, err := NewCompressor(2048)
		if err != nil {
			t.Fatalf("NewCompressor failed: %v", err)
		}

		var got []byte
		for pos := 0; pos < len(data); pos += step {
			end := min(pos+step, len(data))
			buf := make([]byte, c.MaxOutputBytes(end-pos))
			n, err := c.Update(data[pos:end], buf, false)
			if err != nil {
				t.Fatalf("step=%d Update failed: %v", step, err)
			}
			got = append(got, buf[:n]...)
		}
		buf := make([]byte, c.MaxOutputBytes(0))
		n, err := c.Update(nil, buf, true)
		if err != nil {
			t.Fatalf("step=%d flush failed: %v", step, err)
		}
		got = append(got, buf[:n]...)

		if !bytes.Equal(got, whole) {
			t.Fatalf("step=%d produced a different stream", step)
		}
	}
}
