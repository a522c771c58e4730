/*
File    : lux/stdlib/crypto.go

Grounded on the teacher's std/crypto.go (md5/sha256/hex helpers),
delegating to crypto/md5 and crypto/sha256.
*/
package stdlib

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"

	"github.com/luxlang/lux/values"
)

var cryptoBuiltins = []*values.Builtin{
	builtin("md5", func(args []values.Value) values.Value {
		sum := md5.Sum([]byte(argString(args, 0)))
		return &values.String{Value: hex.EncodeToString(sum[:])}
	}),
	builtin("sha256", func(args []values.Value) values.Value {
		sum := sha256.Sum256([]byte(argString(args, 0)))
		return &values.String{Value: hex.EncodeToString(sum[:])}
	}),
}
