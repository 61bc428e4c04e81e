package record

import (
	"encoding/binary"
	"hash"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint 表示记录身份的定宽摘要。
// 相同指纹的两条记录在去重意义下视为同一条消息。
type Fingerprint [blake2b.Size256]byte

// FingerprintOf 计算记录指纹。
// 参与摘要的字段：类型名、标签、等级、消息与归一化参数；
// Meta 与 Additional 刻意排除，避免仅上下文字段不同的消息被过度合并。
// 计算为纯函数，相同逻辑输入跨进程得到相同指纹。
func FingerprintOf(r *Record) Fingerprint {
	h, _ := blake2b.New256(nil)
	writeField(h, []byte(r.Type))
	writeField(h, []byte(r.Tag))

	var lv [2]byte
	binary.LittleEndian.PutUint16(lv[:], uint16(r.Level))
	h.Write(lv[:])

	writeField(h, []byte(r.Message))
	for _, a := range r.Args {
		h.Write([]byte{byte(a.Kind)})
		writeField(h, []byte(a.String()))
	}

	var fp Fingerprint
	copy(fp[:], h.Sum(nil))
	return fp
}

// writeField 写入长度前缀后的字段字节，消除字段拼接歧义。
func writeField(h hash.Hash, b []byte) {
	var n [4]byte
	binary.LittleEndian.PutUint32(n[:], uint32(len(b)))
	h.Write(n[:])
	h.Write(b)
}
