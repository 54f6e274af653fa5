// Package archive builds the minimal ZIP container the hosting API accepts
// as a deploy payload: exactly one stored (uncompressed) entry, written
// with a fixed byte layout so the output is identical across platforms.
package archive

import (
	"encoding/binary"
	"hash/crc32"
	"time"
)

const (
	localHeaderSig = 0x04034b50
	centralDirSig  = 0x02014b50
	endOfDirSig    = 0x06054b50

	zipVersion  = 20 // 2.0, the minimum for the store method
	methodStore = 0
)

// PackSingleFile packs content as a single stored entry named name and
// returns the complete archive bytes. The entry's modification time is the
// wall clock at pack time, in DOS encoding.
func PackSingleFile(name string, content []byte) []byte {
	return packSingleFileAt(name, content, time.Now())
}

func packSingleFileAt(name string, content []byte, now time.Time) []byte {
	nameBytes := []byte(name)
	crc := crc32.ChecksumIEEE(content)
	dosTime, dosDate := dosTimestamp(now)

	local := make([]byte, 30+len(nameBytes))
	binary.LittleEndian.PutUint32(local[0:], localHeaderSig)
	binary.LittleEndian.PutUint16(local[4:], zipVersion)
	binary.LittleEndian.PutUint16(local[6:], 0) // flags
	binary.LittleEndian.PutUint16(local[8:], methodStore)
	binary.LittleEndian.PutUint16(local[10:], dosTime)
	binary.LittleEndian.PutUint16(local[12:], dosDate)
	binary.LittleEndian.PutUint32(local[14:], crc)
	binary.LittleEndian.PutUint32(local[18:], uint32(len(content))) // compressed
	binary.LittleEndian.PutUint32(local[22:], uint32(len(content))) // uncompressed
	binary.LittleEndian.PutUint16(local[26:], uint16(len(nameBytes)))
	binary.LittleEndian.PutUint16(local[28:], 0) // extra length
	copy(local[30:], nameBytes)

	central := make([]byte, 46+len(nameBytes))
	binary.LittleEndian.PutUint32(central[0:], centralDirSig)
	binary.LittleEndian.PutUint16(central[4:], zipVersion) // made by
	binary.LittleEndian.PutUint16(central[6:], zipVersion) // needed
	binary.LittleEndian.PutUint16(central[8:], 0)          // flags
	binary.LittleEndian.PutUint16(central[10:], methodStore)
	binary.LittleEndian.PutUint16(central[12:], dosTime)
	binary.LittleEndian.PutUint16(central[14:], dosDate)
	binary.LittleEndian.PutUint32(central[16:], crc)
	binary.LittleEndian.PutUint32(central[20:], uint32(len(content)))
	binary.LittleEndian.PutUint32(central[24:], uint32(len(content)))
	binary.LittleEndian.PutUint16(central[28:], uint16(len(nameBytes)))
	// extra, comment, disk start, internal and external attributes all zero
	binary.LittleEndian.PutUint32(central[42:], 0) // local header offset
	copy(central[46:], nameBytes)

	centralOffset := len(local) + len(content)
	end := make([]byte, 22)
	binary.LittleEndian.PutUint32(end[0:], endOfDirSig)
	binary.LittleEndian.PutUint16(end[4:], 0) // disk number
	binary.LittleEndian.PutUint16(end[6:], 0) // central dir disk
	binary.LittleEndian.PutUint16(end[8:], 1) // entries on this disk
	binary.LittleEndian.PutUint16(end[10:], 1)
	binary.LittleEndian.PutUint32(end[12:], uint32(len(central)))
	binary.LittleEndian.PutUint32(end[16:], uint32(centralOffset))
	binary.LittleEndian.PutUint16(end[20:], 0) // comment length

	zip := make([]byte, 0, len(local)+len(content)+len(central)+len(end))
	zip = append(zip, local...)
	zip = append(zip, content...)
	zip = append(zip, central...)
	zip = append(zip, end...)
	return zip
}

// dosTimestamp encodes t as the DOS time and date pair used by ZIP
// headers: 2-second resolution, years counted from 1980.
func dosTimestamp(t time.Time) (dosTime, dosDate uint16) {
	dosTime = uint16(t.Hour())<<11 | uint16(t.Minute())<<5 | uint16(t.Second()/2)
	year := t.Year() - 1980
	if year < 0 {
		year = 0
	}
	dosDate = uint16(year)<<9 | uint16(t.Month())<<5 | uint16(t.Day())
	return dosTime, dosDate
}
