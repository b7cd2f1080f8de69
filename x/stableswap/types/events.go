package types

// Event types emitted by the stableswap engine (spec.md §6 "Exposed
// operations" table). Each successful operation emits its own event; yield
// and fee reconciliation additionally emit YieldCollected / FeeCollected
// whenever they mint LP, including inside a mint, swap or redeem.
const (
	EventTypeCreatePool         = "stableswap_pool_created"
	EventTypeAModified          = "stableswap_a_modified"
	EventTypeMinted             = "stableswap_minted"
	EventTypeTokenSwapped       = "stableswap_token_swapped"
	EventTypeRedeemedProportion = "stableswap_redeemed_proportion"
	EventTypeRedeemedSingle     = "stableswap_redeemed_single"
	EventTypeRedeemedMulti      = "stableswap_redeemed_multi"
	EventTypeFeeCollected       = "stableswap_fee_collected"
	EventTypeYieldCollected     = "stableswap_yield_collected"
)

// Event attribute keys, lowercase-underscore per the teacher's convention.
const (
	AttributeKeyPoolID         = "pool_id"
	AttributeKeySwapID         = "swap_id"
	AttributeKeyPalletID       = "pallet_id"
	AttributeKeyA              = "a"
	AttributeKeyValue          = "value"
	AttributeKeyTime           = "time"
	AttributeKeySender         = "sender"
	AttributeKeyRecipient      = "recipient"
	AttributeKeyAssetIndexI    = "i"
	AttributeKeyAssetIndexJ    = "j"
	AttributeKeyInputAmount    = "input_amount"
	AttributeKeyOutputAmount   = "output_amount"
	AttributeKeyMintAmount     = "mint_amount"
	AttributeKeyBurnAmount     = "burn_amount"
	AttributeKeyFeeAmount      = "fee_amount"
	AttributeKeyYieldAmount    = "yield_amount"
	AttributeKeyTotalSupply    = "total_supply"
	AttributeKeyMinOutput      = "min_output"
	AttributeKeyMaxBurn        = "max_burn"
)
