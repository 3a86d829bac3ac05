package raw

import "github.com/zstdstream/zstdio/internal/native"

// CParameter is a single compression-side engine parameter, ready to hand
// to Encoder.SetParameter. Each constructor below maps to exactly one
// engine parameter id, per the table in the component design.
type CParameter struct {
	id    int32
	value int32
}

// Strategy selects the match-finding strategy used at a given compression
// level; values mirror ZSTD_strategy.
type Strategy int32

const (
	StrategyFast Strategy = iota + 1
	StrategyDfast
	StrategyGreedy
	StrategyLazy
	StrategyLazy2
	StrategyBtlazy2
	StrategyBtopt
	StrategyBtultra
	StrategyBtultra2
)

// FrameFormat selects whether encoded/decoded frames carry the 4-byte
// magic number.
type FrameFormat int32

const (
	FormatStandard  FrameFormat = FrameFormat(native.FormatOne)
	FormatMagicless FrameFormat = FrameFormat(native.FormatMagicless)
)

func boolParam(id int32, v bool) CParameter {
	if v {
		return CParameter{id: id, value: 1}
	}
	return CParameter{id: id, value: 0}
}

func CompressionLevel(level int32) CParameter { return CParameter{native.CParamCompressionLevel, level} }
func WindowLog(log int32) CParameter          { return CParameter{native.CParamWindowLog, log} }
func HashLog(log int32) CParameter            { return CParameter{native.CParamHashLog, log} }
func ChainLog(log int32) CParameter           { return CParameter{native.CParamChainLog, log} }
func SearchLog(log int32) CParameter          { return CParameter{native.CParamSearchLog, log} }
func MinMatch(length int32) CParameter        { return CParameter{native.CParamMinMatch, length} }
func TargetLength(length int32) CParameter    { return CParameter{native.CParamTargetLength, length} }
func CompressionStrategy(s Strategy) CParameter {
	return CParameter{native.CParamStrategy, int32(s)}
}

func EnableLongDistanceMatching(enable bool) CParameter {
	return boolParam(native.CParamEnableLongDistanceMatching, enable)
}
func LDMHashLog(log int32) CParameter       { return CParameter{native.CParamLdmHashLog, log} }
func LDMMinMatch(length int32) CParameter   { return CParameter{native.CParamLdmMinMatch, length} }
func LDMBucketSizeLog(log int32) CParameter { return CParameter{native.CParamLdmBucketSizeLog, log} }
func LDMHashRateLog(log int32) CParameter   { return CParameter{native.CParamLdmHashRateLog, log} }

func IncludeContentSize(include bool) CParameter { return boolParam(native.CParamContentSizeFlag, include) }
func IncludeChecksum(include bool) CParameter    { return boolParam(native.CParamChecksumFlag, include) }
func IncludeDictID(include bool) CParameter      { return boolParam(native.CParamDictIDFlag, include) }

func NbWorkers(n int32) CParameter    { return CParameter{native.CParamNbWorkers, n} }
func JobSize(size int32) CParameter   { return CParameter{native.CParamJobSize, size} }
func OverlapLog(log int32) CParameter { return CParameter{native.CParamOverlapLog, log} }

func EncoderFrameFormat(f FrameFormat) CParameter {
	return CParameter{native.CParamFormat, int32(f)}
}

// DParameter is a single decompression-side engine parameter.
type DParameter struct {
	id    int32
	value int32
}

func WindowLogMax(log int32) DParameter { return DParameter{native.DParamWindowLogMax, log} }

func DecoderFrameFormat(f FrameFormat) DParameter {
	return DParameter{native.DParamFormat, int32(f)}
}
