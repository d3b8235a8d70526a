package registry

// ABI fragments for the contracts the CLI binds to.
const (
	ERC20ABI = `[
		{"name":"totalSupply","type":"function","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
		{"name":"balanceOf","type":"function","stateMutability":"view","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
		{"name":"decimals","type":"function","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint8"}]},
		{"name":"allowance","type":"function","stateMutability":"view","inputs":[{"name":"owner","type":"address"},{"name":"spender","type":"address"}],"outputs":[{"name":"","type":"uint256"}]}
	]`

	DataStoreABI = `[
		{"name":"getUint","type":"function","stateMutability":"view","inputs":[{"name":"key","type":"bytes32"}],"outputs":[{"name":"","type":"uint256"}]},
		{"name":"getInt","type":"function","stateMutability":"view","inputs":[{"name":"key","type":"bytes32"}],"outputs":[{"name":"","type":"int256"}]},
		{"name":"getAddress","type":"function","stateMutability":"view","inputs":[{"name":"key","type":"bytes32"}],"outputs":[{"name":"","type":"address"}]},
		{"name":"getBool","type":"function","stateMutability":"view","inputs":[{"name":"key","type":"bytes32"}],"outputs":[{"name":"","type":"bool"}]},
		{"name":"getBytes32Count","type":"function","stateMutability":"view","inputs":[{"name":"setKey","type":"bytes32"}],"outputs":[{"name":"","type":"uint256"}]},
		{"name":"getBytes32ValuesAt","type":"function","stateMutability":"view","inputs":[{"name":"setKey","type":"bytes32"},{"name":"start","type":"uint256"},{"name":"end","type":"uint256"}],"outputs":[{"name":"","type":"bytes32[]"}]}
	]`

	MulticallABI = `[
		{"name":"aggregate3","type":"function","stateMutability":"payable","inputs":[{"name":"calls","type":"tuple[]","components":[{"name":"target","type":"address"},{"name":"allowFailure","type":"bool"},{"name":"callData","type":"bytes"}]}],"outputs":[{"name":"returnData","type":"tuple[]","components":[{"name":"success","type":"bool"},{"name":"returnData","type":"bytes"}]}]},
		{"name":"getBlockNumber","type":"function","stateMutability":"view","inputs":[],"outputs":[{"name":"blockNumber","type":"uint256"}]},
		{"name":"getCurrentBlockTimestamp","type":"function","stateMutability":"view","inputs":[],"outputs":[{"name":"timestamp","type":"uint256"}]}
	]`

	ExchangeRouterABI = `[
		{"name":"multicall","type":"function","stateMutability":"payable","inputs":[{"name":"data","type":"bytes[]"}],"outputs":[{"name":"results","type":"bytes[]"}]},
		{"name":"sendWnt","type":"function","stateMutability":"payable","inputs":[{"name":"receiver","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[]},
		{"name":"sendTokens","type":"function","stateMutability":"payable","inputs":[{"name":"token","type":"address"},{"name":"receiver","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[]},
		{"name":"cancelDeposit","type":"function","stateMutability":"nonpayable","inputs":[{"name":"key","type":"bytes32"}],"outputs":[]},
		{"name":"cancelWithdrawal","type":"function","stateMutability":"nonpayable","inputs":[{"name":"key","type":"bytes32"}],"outputs":[]},
		{"name":"cancelShift","type":"function","stateMutability":"nonpayable","inputs":[{"name":"key","type":"bytes32"}],"outputs":[]}
	]`

	GlvRouterABI = `[
		{"name":"multicall","type":"function","stateMutability":"payable","inputs":[{"name":"data","type":"bytes[]"}],"outputs":[{"name":"results","type":"bytes[]"}]},
		{"name":"sendWnt","type":"function","stateMutability":"payable","inputs":[{"name":"receiver","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[]},
		{"name":"sendTokens","type":"function","stateMutability":"payable","inputs":[{"name":"token","type":"address"},{"name":"receiver","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[]},
		{"name":"cancelGlvDeposit","type":"function","stateMutability":"nonpayable","inputs":[{"name":"key","type":"bytes32"}],"outputs":[]},
		{"name":"cancelGlvWithdrawal","type":"function","stateMutability":"nonpayable","inputs":[{"name":"key","type":"bytes32"}],"outputs":[]}
	]`
)
