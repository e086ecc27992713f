// Package ports provides the well-known TCP service name table.
package ports

import "sort"

// services maps well-known TCP port numbers to their conventional names.
// It is never written after init.
var services = map[int]string{
	7:     "echo",
	9:     "discard",
	13:    "daytime",
	19:    "chargen",
	20:    "ftp-data",
	21:    "ftp",
	22:    "ssh",
	23:    "telnet",
	25:    "smtp",
	37:    "time",
	43:    "whois",
	53:    "dns",
	69:    "tftp",
	70:    "gopher",
	79:    "finger",
	80:    "http",
	88:    "kerberos",
	102:   "iso-tsap",
	110:   "pop3",
	111:   "rpcbind",
	113:   "ident",
	119:   "nntp",
	123:   "ntp",
	135:   "msrpc",
	137:   "netbios-ns",
	138:   "netbios-dgm",
	139:   "netbios-ssn",
	143:   "imap",
	161:   "snmp",
	177:   "xdmcp",
	179:   "bgp",
	194:   "irc",
	199:   "smux",
	389:   "ldap",
	427:   "svrloc",
	443:   "https",
	444:   "snpp",
	445:   "microsoft-ds",
	465:   "smtps",
	513:   "login",
	514:   "shell",
	515:   "printer",
	543:   "klogin",
	544:   "kshell",
	548:   "afp",
	554:   "rtsp",
	587:   "submission",
	631:   "ipp",
	636:   "ldaps",
	646:   "ldp",
	873:   "rsync",
	990:   "ftps",
	993:   "imaps",
	995:   "pop3s",
	1025:  "NFS-or-IIS",
	1080:  "socks",
	1433:  "ms-sql-s",
	1521:  "oracle",
	1723:  "pptp",
	1883:  "mqtt",
	1900:  "upnp",
	2049:  "nfs",
	2082:  "cpanel",
	2083:  "cpanel-ssl",
	2181:  "zookeeper",
	2375:  "docker",
	2376:  "docker-s",
	3000:  "ppp",
	3128:  "squid-http",
	3306:  "mysql",
	3389:  "ms-wbt-server",
	3690:  "svn",
	4369:  "epmd",
	5000:  "upnp",
	5060:  "sip",
	5222:  "xmpp-client",
	5432:  "postgresql",
	5672:  "amqp",
	5900:  "vnc",
	5984:  "couchdb",
	6000:  "X11",
	6379:  "redis",
	6443:  "kubernetes-api",
	6667:  "irc",
	8000:  "http-alt",
	8008:  "http",
	8080:  "http-proxy",
	8081:  "blackice-icecap",
	8443:  "https-alt",
	8888:  "sun-answerbook",
	9000:  "cslistener",
	9090:  "zeus-admin",
	9092:  "kafka",
	9100:  "jetdirect",
	9200:  "elasticsearch",
	11211: "memcache",
	27017: "mongod",
}

var known []int

func init() {
	known = make([]int, 0, len(services))
	for p := range services {
		known = append(known, p)
	}
	sort.Ints(known)
}

// Lookup returns the conventional service name for port, or "" if the
// port is not in the table.
func Lookup(port int) string {
	return services[port]
}

// Known returns every port in the table in ascending order.
func Known() []int {
	out := make([]int, len(known))
	copy(out, known)
	return out
}
