package memory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestROMLoadFromFileDefaultOffset(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "image.bin")
	assert.NoError(t, os.WriteFile(path, []byte{0xA9, 0xFF, 0x00}, 0o644))

	var r ROM
	assert.NoError(t, r.LoadFromFile(path, ROMBase))
	assert.Equal(t, byte(0xA9), r.Read(0))
	assert.Equal(t, byte(0xFF), r.Read(1))
	assert.Equal(t, byte(0x00), r.Read(2))
	assert.Equal(t, byte(0), r.Read(3))
}

func TestROMLoadFromFileMissing(t *testing.T) {
	var r ROM
	err := r.LoadFromFile("/nonexistent/path.bin", ROMBase)
	assert.Error(t, err)
	var bad *BadROMFileError
	assert.ErrorAs(t, err, &bad)
}

func TestROMLoadFromFileDiscardsOutOfRangeBytes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tail.bin")
	data := make([]byte, 4)
	assert.NoError(t, os.WriteFile(path, data, 0o644))

	var r ROM
	// load address near the top of the address space so the tail spills
	// past 0xFFFF and must be discarded, not panic.
	assert.NoError(t, r.LoadFromFile(path, 0xFFFE))
}

func TestROMLoadFromDirectoryOrderingAndAddress(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "a_9000.bin"), []byte{0x11}, 0o644))
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "b.bin"), []byte{0x22}, 0o644))
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "not-a-rom.txt"), []byte{0xFF}, 0o644))

	var r ROM
	assert.NoError(t, r.LoadFromDirectory(dir))
	assert.Equal(t, byte(0x11), r.Read(0x9000-ROMBase))
	assert.Equal(t, byte(0x22), r.Read(0)) // b.bin defaults to ROMBase
}

func TestROMLoadFromDirectoryMissing(t *testing.T) {
	var r ROM
	err := r.LoadFromDirectory("/nonexistent/dir")
	assert.Error(t, err)
	var bad *BadROMDirectoryError
	assert.ErrorAs(t, err, &bad)
}
