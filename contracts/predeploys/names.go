package predeploys

// Name is the symbolic name of a predeployed token, liquidity pool or
// precompiled module. The set of valid names is closed.
type Name string

// Base tokens
const (
	NameSEL    Name = "SEL"
	NameSUSD   Name = "SUSD"
	NameDOT    Name = "DOT"
	NameRENBTC Name = "RENBTC"
	NameCASH   Name = "CASH"
	NameKMD    Name = "KMD"
	NameKSM    Name = "KSM"
)

// Liquidity pool tokens
const (
	NameLPSELSUSD    Name = "LP_SEL_SUSD"
	NameLPDOTSUSD    Name = "LP_DOT_SUSD"
	NameLPRENBTCSUSD Name = "LP_RENBTC_SUSD"
	NameLPKSMKUSD    Name = "LP_KSM_KUSD"
)

// Precompiled modules
const (
	NameEVM         Name = "EVM"
	NameOracle      Name = "Oracle"
	NameSchedule    Name = "Schedule"
	NameDEX         Name = "DEX"
	NameEVMAccounts Name = "EVMAccounts"
)

func (n Name) String() string {
	return string(n)
}

// Valid reports whether n is one of the registered names
func (n Name) Valid() bool {
	_, ok := index.Get([]byte(n))

	return ok
}

// Category returns the group n belongs to. Unknown names are CategoryUnknown.
func (n Name) Category() Category {
	switch n {
	case NameSEL, NameSUSD, NameDOT, NameRENBTC, NameCASH, NameKMD, NameKSM:
		return CategoryToken
	case NameLPSELSUSD, NameLPDOTSUSD, NameLPRENBTCSUSD, NameLPKSMKUSD:
		return CategoryLiquidityPool
	case NameEVM, NameOracle, NameSchedule, NameDEX, NameEVMAccounts:
		return CategoryPrecompile
	default:
		return CategoryUnknown
	}
}

// Category groups names by convention. It is not encoded in the address.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryToken
	CategoryLiquidityPool
	CategoryPrecompile
)

func (c Category) String() string {
	switch c {
	case CategoryToken:
		return "token"
	case CategoryLiquidityPool:
		return "liquidity-pool"
	case CategoryPrecompile:
		return "precompile"
	default:
		return "unknown"
	}
}
