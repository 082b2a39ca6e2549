package nuget

var ParseInstallOutput = parseInstallOutput
