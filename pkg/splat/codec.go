package splat

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"math"
)

// Cloud record format, little-endian:
//
//	[CRC32(4)][Flags(4)][Count(4)][Positions][Rotations][Scales][Colors][Opacities]
//
// Positions are always present; the flag bits mark which optional arrays
// follow. The CRC32 covers everything after the CRC field itself.
const cloudHeaderSize = 12

const (
	flagRotations = 1 << iota
	flagScales
	flagColors
	flagOpacities
)

// CloudCodec handles serialization and deserialization of clouds.
type CloudCodec struct{}

// NewCloudCodec creates a new cloud codec instance.
func NewCloudCodec() *CloudCodec {
	return &CloudCodec{}
}

// Encode serializes a cloud into the binary cloud record format.
func (c *CloudCodec) Encode(cloud *Cloud) ([]byte, error) {
	if err := checkArray(cloud, "positions", cloud.Positions, 3, true); err != nil {
		return nil, err
	}
	if err := checkArray(cloud, "rotations", cloud.Rotations, 4, false); err != nil {
		return nil, err
	}
	if err := checkArray(cloud, "scales", cloud.Scales, 3, false); err != nil {
		return nil, err
	}
	if err := checkArray(cloud, "colors", cloud.Colors, 3, false); err != nil {
		return nil, err
	}
	if err := checkArray(cloud, "opacities", cloud.Opacities, 1, false); err != nil {
		return nil, err
	}

	var flags uint32
	floats := len(cloud.Positions)
	if cloud.Rotations != nil {
		flags |= flagRotations
		floats += len(cloud.Rotations)
	}
	if cloud.Scales != nil {
		flags |= flagScales
		floats += len(cloud.Scales)
	}
	if cloud.Colors != nil {
		flags |= flagColors
		floats += len(cloud.Colors)
	}
	if cloud.Opacities != nil {
		flags |= flagOpacities
		floats += len(cloud.Opacities)
	}

	buf := make([]byte, cloudHeaderSize+4*floats)
	binary.LittleEndian.PutUint32(buf[4:], flags)
	binary.LittleEndian.PutUint32(buf[8:], uint32(cloud.Count))

	off := cloudHeaderSize
	for _, arr := range [][]float32{cloud.Positions, cloud.Rotations, cloud.Scales, cloud.Colors, cloud.Opacities} {
		off = putFloats(buf, off, arr)
	}

	binary.LittleEndian.PutUint32(buf[0:], crc32.ChecksumIEEE(buf[4:]))
	return buf, nil
}

// Decode deserializes a binary cloud record, validating its CRC.
func (c *CloudCodec) Decode(data []byte) (*Cloud, error) {
	if len(data) < cloudHeaderSize {
		return nil, fmt.Errorf("data too short for cloud header")
	}
	if crc := binary.LittleEndian.Uint32(data[0:4]); crc != crc32.ChecksumIEEE(data[4:]) {
		return nil, fmt.Errorf("cloud record CRC mismatch")
	}

	flags := binary.LittleEndian.Uint32(data[4:8])
	count := int(binary.LittleEndian.Uint32(data[8:12]))

	floats := 3 * count
	if flags&flagRotations != 0 {
		floats += 4 * count
	}
	if flags&flagScales != 0 {
		floats += 3 * count
	}
	if flags&flagColors != 0 {
		floats += 3 * count
	}
	if flags&flagOpacities != 0 {
		floats += count
	}
	if want := cloudHeaderSize + 4*floats; len(data) != want {
		return nil, fmt.Errorf("cloud record size mismatch: got %d bytes, want %d", len(data), want)
	}

	cloud := &Cloud{Count: count}
	off := cloudHeaderSize
	cloud.Positions, off = readFloats(data, off, 3*count)
	if flags&flagRotations != 0 {
		cloud.Rotations, off = readFloats(data, off, 4*count)
	}
	if flags&flagScales != 0 {
		cloud.Scales, off = readFloats(data, off, 3*count)
	}
	if flags&flagColors != 0 {
		cloud.Colors, off = readFloats(data, off, 3*count)
	}
	if flags&flagOpacities != 0 {
		cloud.Opacities, _ = readFloats(data, off, count)
	}
	return cloud, nil
}

func checkArray(cloud *Cloud, name string, arr []float32, stride int, required bool) error {
	if arr == nil {
		if required {
			return fmt.Errorf("cloud has no %s", name)
		}
		return nil
	}
	if len(arr) != stride*cloud.Count {
		return fmt.Errorf("%s length %d does not match count %d", name, len(arr), cloud.Count)
	}
	return nil
}

func putFloats(buf []byte, off int, vals []float32) int {
	for _, v := range vals {
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(v))
		off += 4
	}
	return off
}

func readFloats(data []byte, off, n int) ([]float32, int) {
	vals := make([]float32, n)
	for i := range vals {
		vals[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[off:]))
		off += 4
	}
	return vals, off
}
