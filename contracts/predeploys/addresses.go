package predeploys

import "github.com/selendra/selendra/types"

// Address literals as deployed. Each address is opaque; the numbers
// embedded in them carry no schema callers should rely on.
const (
	SELHex    = "0x0000000000000000000100000000000000000000"
	SUSDHex   = "0x0000000000000000000100000000000000000001"
	RENBTCHex = "0x0000000000000000000100000000000000000014"
	CASHHex   = "0x0000000000000000000100000000000000000015"
	KMDHex    = "0x0000000000000000000100000000000000000016"
	DOTHex    = "0x0000000000000000000100000000000000000080"
	KSMHex    = "0x0000000000000000000100000000000000000081"

	LPSELSUSDHex    = "0x0000000000000000000200000000000000000001"
	LPDOTSUSDHex    = "0x0000000000000000000200000000020000000001"
	LPRENBTCSUSDHex = "0x0000000000000000000200000000140000000001"
	LPKSMKUSDHex    = "0x0000000000000000000200000000820000000081"

	EVMHex         = "0x0000000000000000000000000000000000000800"
	OracleHex      = "0x0000000000000000000000000000000000000801"
	ScheduleHex    = "0x0000000000000000000000000000000000000802"
	DEXHex         = "0x0000000000000000000000000000000000000803"
	EVMAccountsHex = "0x0000000000000000000000000000000000000806"
)

var (
	SEL    = types.StringToAddress(SELHex)
	SUSD   = types.StringToAddress(SUSDHex)
	DOT    = types.StringToAddress(DOTHex)
	RENBTC = types.StringToAddress(RENBTCHex)
	CASH   = types.StringToAddress(CASHHex)
	KMD    = types.StringToAddress(KMDHex)
	KSM    = types.StringToAddress(KSMHex)

	// LP_SEL_SUSD
	LPSELSUSD = types.StringToAddress(LPSELSUSDHex)
	// LP_DOT_SUSD
	LPDOTSUSD = types.StringToAddress(LPDOTSUSDHex)
	// LP_RENBTC_SUSD
	LPRENBTCSUSD = types.StringToAddress(LPRENBTCSUSDHex)
	// LP_KSM_KUSD
	LPKSMKUSD = types.StringToAddress(LPKSMKUSDHex)

	// EVM precompile
	EVM = types.StringToAddress(EVMHex)
	// Oracle precompile
	Oracle = types.StringToAddress(OracleHex)
	// Schedule precompile
	Schedule = types.StringToAddress(ScheduleHex)
	// DEX precompile
	DEX = types.StringToAddress(DEXHex)
	// EVMAccounts precompile
	EVMAccounts = types.StringToAddress(EVMAccountsHex)
)

// declared lists every entry in export order
var declared = []Entry{
	{Name: NameSEL, Hex: SELHex},
	{Name: NameSUSD, Hex: SUSDHex},
	{Name: NameDOT, Hex: DOTHex},
	{Name: NameRENBTC, Hex: RENBTCHex},
	{Name: NameCASH, Hex: CASHHex},
	{Name: NameKMD, Hex: KMDHex},
	{Name: NameKSM, Hex: KSMHex},
	{Name: NameLPSELSUSD, Hex: LPSELSUSDHex},
	{Name: NameLPDOTSUSD, Hex: LPDOTSUSDHex},
	{Name: NameLPRENBTCSUSD, Hex: LPRENBTCSUSDHex},
	{Name: NameLPKSMKUSD, Hex: LPKSMKUSDHex},
	{Name: NameEVM, Hex: EVMHex},
	{Name: NameOracle, Hex: OracleHex},
	{Name: NameSchedule, Hex: ScheduleHex},
	{Name: NameDEX, Hex: DEXHex},
	{Name: NameEVMAccounts, Hex: EVMAccountsHex},
}
