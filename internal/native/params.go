package native

// Compression parameter identifiers, matching ZSTD_cParameter from zstd's
// advanced API (zstd.h). These are the real engine-assigned ids; the numeric
// values are part of the library's stable ABI, not invented here.
const (
	CParamCompressionLevel int32 = 100
	CParamWindowLog        int32 = 101
	CParamHashLog          int32 = 102
	CParamChainLog         int32 = 103
	CParamSearchLog        int32 = 104
	CParamMinMatch         int32 = 105
	CParamTargetLength     int32 = 106
	CParamStrategy         int32 = 107

	CParamEnableLongDistanceMatching int32 = 160
	CParamLdmHashLog                 int32 = 161
	CParamLdmMinMatch                int32 = 162
	CParamLdmBucketSizeLog           int32 = 163
	CParamLdmHashRateLog             int32 = 164

	CParamContentSizeFlag int32 = 200
	CParamChecksumFlag    int32 = 201
	CParamDictIDFlag      int32 = 202

	CParamNbWorkers  int32 = 400
	CParamJobSize    int32 = 401
	CParamOverlapLog int32 = 402

	// CParamFormat corresponds to ZSTD_c_experimentalParam2 (format),
	// part of zstd's experimental advanced API.
	CParamFormat int32 = 10
)

// Decompression parameter identifiers, matching ZSTD_dParameter.
const (
	DParamWindowLogMax int32 = 100

	// DParamFormat corresponds to ZSTD_d_experimentalParam1 (format).
	DParamFormat int32 = 1000
)

// FrameFormat values shared by CParamFormat/DParamFormat.
const (
	FormatOne        int32 = 0 // standard zstd frames, with magic number
	FormatMagicless  int32 = 1
)
