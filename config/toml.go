package config

const ConfigTemplate = `db_host = "{{ .DbHost }}"
db_port = {{ .DbPort }}
db_username = "{{ .DbUsername }}"
db_password = "{{ .DbPassword }}"
db_schema = "{{ .DbSchema }}"

server_port = {{ .ServerPort }}

[chains]{{ range $k, $v := .Chains }}
	[chains.{{ $k }}]
	chain = "{{ $k }}"
	block_time = {{ $v.BlockTime }}
	rpc_url = "{{ $v.RpcUrl }}"
	tx_timeout = {{ $v.TxTimeout }}
	minimum_byte_fee = {{ $v.MinimumByteFee }}
	new_account_gas_multiplier = {{ $v.NewAccountGasMultiplier }}
	explorer_url = "{{ $v.ExplorerUrl }}"
	chain_id = {{ $v.ChainId }}
	use_gas_eip_1559 = {{ $v.UseGasEip1559 }}
{{ end }}
`
