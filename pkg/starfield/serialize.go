package starfield

import (
	"bufio"
	"encoding/binary"
	"encoding/gob"
	"fmt"
	"os"
)

// Binary catalog format: 4-byte magic, uint32 entry count, then per entry
// float64 RA, float64 Dec (degrees), float64 magnitude and one spectral
// class byte, all little-endian.
var catalogMagic = [4]byte{'B', 'S', 'C', '1'}

type catalogRecord struct {
	RA, Dec, Mag float64
	Class        byte
}

// ReadCatalog loads star entries from a binary catalog file.
func ReadCatalog(path string) ([]Star, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	var magic [4]byte
	if err := binary.Read(r, binary.LittleEndian, &magic); err != nil {
		return nil, fmt.Errorf("read catalog header: %w", err)
	}
	if magic != catalogMagic {
		return nil, fmt.Errorf("not a star catalog: bad magic %q", magic)
	}
	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("read catalog count: %w", err)
	}

	stars := make([]Star, 0, count)
	for i := uint32(0); i < count; i++ {
		var rec catalogRecord
		if err := binary.Read(r, binary.LittleEndian, &rec); err != nil {
			return nil, fmt.Errorf("read catalog entry %d: %w", i, err)
		}
		stars = append(stars, NewStar(rec.RA, rec.Dec, rec.Mag, rec.Class))
	}
	return stars, nil
}

// WriteCatalog stores raw catalog records in the binary format. Only the
// equatorial source data is written; directions and colors are derived on
// load.
func WriteCatalog(path string, entries []CatalogEntry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create catalog: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := binary.Write(w, binary.LittleEndian, catalogMagic); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(entries))); err != nil {
		return err
	}
	for _, e := range entries {
		rec := catalogRecord{RA: e.RA, Dec: e.Dec, Mag: e.Mag, Class: e.Class}
		if err := binary.Write(w, binary.LittleEndian, rec); err != nil {
			return err
		}
	}
	return w.Flush()
}

// CatalogEntry is the public source form for writing binary catalogs.
type CatalogEntry struct {
	RA, Dec, Mag float64
	Class        byte
}

// SaveIndex persists an index as a gob stream of its entries. The tree is
// rebuilt on load, which keeps the balance invariant out of the wire
// format.
func SaveIndex(path string, ix *Index) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}
	defer f.Close()

	stars := make([]Star, 0, ix.Len())
	ix.root.collect(&stars)
	if err := gob.NewEncoder(f).Encode(stars); err != nil {
		return fmt.Errorf("encode index: %w", err)
	}
	return nil
}

// LoadIndex rebuilds a persisted index.
func LoadIndex(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open index: %w", err)
	}
	defer f.Close()

	var stars []Star
	if err := gob.NewDecoder(f).Decode(&stars); err != nil {
		return nil, fmt.Errorf("decode index: %w", err)
	}
	return BuildIndex(stars), nil
}

func (n *kdNode) collect(out *[]Star) {
	if n == nil {
		return
	}
	n.left.collect(out)
	*out = append(*out, n.star)
	n.right.collect(out)
}
