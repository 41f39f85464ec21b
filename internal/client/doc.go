// Package client implements the weather-client command line.
//
// Each invocation runs one command against the API through an
// [adapter.WeatherClient]:
//
//	login -u <username> -p <password>     print a fresh access token
//	me                                    print the current account
//	password -p <current> -n <new>        rotate the caller's secret
//	public <kind> [filter]                list public readings
//	protected <kind> [filter]             list protected readings
//	get <kind> <id>                       print one protected reading
//	ingest <kind> [-f file]               submit a reading (JSON, stdin by default)
//	delete <kind> <id>                    remove one reading
//
// Filter flags are -from, -to (RFC3339), -city, -country, -limit and -offset.
// Results are written to the output as indented JSON.
package client
