package scan

// data from https://www.iana.org/assignments/service-names-port-numbers/service-names-port-numbers.csv
// regenerate the full table with tools/update-ports.go
var knownPorts = map[int]string{
	21:    "ftp",
	22:    "ssh",
	23:    "telnet",
	25:    "smtp",
	53:    "domain",
	80:    "http",
	110:   "pop3",
	111:   "sunrpc",
	135:   "epmap",
	139:   "netbios-ssn",
	143:   "imap",
	443:   "https",
	445:   "microsoft-ds",
	993:   "imaps",
	995:   "pop3s",
	1433:  "ms-sql-s",
	1723:  "pptp",
	3306:  "mysql",
	3389:  "ms-wbt-server",
	5432:  "postgresql",
	5900:  "rfb",
	6379:  "redis",
	8080:  "http-alt",
	8443:  "pcsync-https",
	9200:  "wap-wsp",
	27017: "mongodb",
}
