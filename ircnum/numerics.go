// Copyright (c) 2024 the ircproto authors
// released under the MIT license

// Package ircnum carries the RFC 1459/2812 numeric reply table: the
// three-digit reply codes and their conventional names, with lookups in
// both directions. A numeric is just a command whose name is its code;
// parsing does not depend on this table.
package ircnum

import "fmt"

const (
	RPL_WELCOME           = "001"
	RPL_YOURHOST          = "002"
	RPL_CREATED           = "003"
	RPL_MYINFO            = "004"
	RPL_BOUNCE            = "005"
	RPL_TRACELINK         = "200"
	RPL_TRACECONNECTING   = "201"
	RPL_TRACEHANDSHAKE    = "202"
	RPL_TRACEUNKNOWN      = "203"
	RPL_TRACEOPERATOR     = "204"
	RPL_TRACEUSER         = "205"
	RPL_TRACESERVER       = "206"
	RPL_TRACESERVICE      = "207"
	RPL_TRACENEWTYPE      = "208"
	RPL_TRACECLASS        = "209"
	RPL_TRACERECONNECT    = "210"
	RPL_STATSLINKINFO     = "211"
	RPL_STATSCOMMANDS     = "212"
	RPL_STATSCLINE        = "213"
	RPL_STATSNLINE        = "214"
	RPL_STATSILINE        = "215"
	RPL_STATSKLINE        = "216"
	RPL_STATSQLINE        = "217"
	RPL_STATSYLINE        = "218"
	RPL_ENDOFSTATS        = "219"
	RPL_UMODEIS           = "221"
	RPL_SERVICEINFO       = "231"
	RPL_ENDOFSERVICES     = "232"
	RPL_SERVICE           = "233"
	RPL_SERVLIST          = "234"
	RPL_SERVLISTEND       = "235"
	RPL_STATSVLINE        = "240"
	RPL_STATSLLINE        = "241"
	RPL_STATSUPTIME       = "242"
	RPL_STATSOLINE        = "243"
	RPL_STATSHLINE        = "244"
	RPL_STATSPING         = "246"
	RPL_STATSBLINE        = "247"
	RPL_STATSDLINE        = "250"
	RPL_LUSERCLIENT       = "251"
	RPL_LUSEROP           = "252"
	RPL_LUSERUNKNOWN      = "253"
	RPL_LUSERCHANNELS     = "254"
	RPL_LUSERME           = "255"
	RPL_ADMINME           = "256"
	RPL_ADMINEMAIL        = "259"
	RPL_TRACELOG          = "261"
	RPL_TRACEEND          = "262"
	RPL_TRYAGAIN          = "263"
	RPL_NONE              = "300"
	RPL_AWAY              = "301"
	RPL_USERHOST          = "302"
	RPL_ISON              = "303"
	RPL_UNAWAY            = "305"
	RPL_NOWAWAY           = "306"
	RPL_WHOISUSER         = "311"
	RPL_WHOISSERVER       = "312"
	RPL_WHOISOPERATOR     = "313"
	RPL_WHOWASUSER        = "314"
	RPL_ENDOFWHO          = "315"
	RPL_WHOISCHANOP       = "316"
	RPL_WHOISIDLE         = "317"
	RPL_ENDOFWHOIS        = "318"
	RPL_WHOISCHANNELS     = "319"
	RPL_LISTSTART         = "321"
	RPL_LIST              = "322"
	RPL_LISTEND           = "323"
	RPL_CHANNELMODEIS     = "324"
	RPL_UNIQOPIS          = "325"
	RPL_NOTOPIC           = "331"
	RPL_TOPIC             = "332"
	RPL_INVITING          = "341"
	RPL_SUMMONING         = "342"
	RPL_INVITELIST        = "346"
	RPL_ENDOFINVITELIST   = "347"
	RPL_EXCEPTLIST        = "348"
	RPL_ENDOFEXCEPTLIST   = "349"
	RPL_VERSION           = "351"
	RPL_WHOREPLY          = "352"
	RPL_NAMREPLY          = "353"
	RPL_KILLDONE          = "361"
	RPL_CLOSING           = "362"
	RPL_CLOSEEND          = "363"
	RPL_LINKS             = "364"
	RPL_ENDOFLINKS        = "365"
	RPL_ENDOFNAMES        = "366"
	RPL_BANLIST           = "367"
	RPL_ENDOFBANLIST      = "368"
	RPL_ENDOFWHOWAS       = "369"
	RPL_INFO              = "371"
	RPL_MOTD              = "372"
	RPL_INFOSTART         = "373"
	RPL_ENDOFINFO         = "374"
	RPL_MOTDSTART         = "375"
	RPL_ENDOFMOTD         = "376"
	RPL_YOUREOPER         = "381"
	RPL_REHASHING         = "382"
	RPL_YOURESERVICE      = "383"
	RPL_MYPORTIS          = "384"
	RPL_TIME              = "391"
	RPL_USERSSTART        = "392"
	RPL_USERS             = "393"
	RPL_ENDOFUSERS        = "394"
	RPL_NOUSERS           = "395"
	ERR_NOSUCHNICK        = "401"
	ERR_NOSUCHSERVER      = "402"
	ERR_NOSUCHCHANNEL     = "403"
	ERR_CANNOTSENDTOCHAN  = "404"
	ERR_TOOMANYCHANNELS   = "405"
	ERR_WASNOSUCHNICK     = "406"
	ERR_TOOMANYTARGETS    = "407"
	ERR_NOSUCHSERVICE     = "408"
	ERR_NOORIGIN          = "409"
	ERR_NORECIPIENT       = "411"
	ERR_NOTEXTTOSEND      = "412"
	ERR_NOTOPLEVEL        = "413"
	ERR_WILDTOPLEVEL      = "414"
	ERR_BADMASK           = "415"
	ERR_UNKNOWNCOMMAND    = "421"
	ERR_NOMOTD            = "422"
	ERR_NOADMININFO       = "423"
	ERR_FILEERROR         = "424"
	ERR_NONICKNAMEGIVEN   = "431"
	ERR_ERRONEUSNICKNAME  = "432"
	ERR_NICKNAMEINUSE     = "433"
	ERR_NICKCOLLISION     = "436"
	ERR_UNAVAILRESOURCE   = "437"
	ERR_USERNOTINCHANNEL  = "441"
	ERR_NOTONCHANNEL      = "442"
	ERR_USERONCHANNEL     = "443"
	ERR_NOLOGIN           = "444"
	ERR_SUMMONDISABLED    = "445"
	ERR_USERSDISABLED     = "446"
	ERR_NOTREGISTERED     = "451"
	ERR_NEEDMOREPARAMS    = "461"
	ERR_ALREADYREGISTERED = "462"
	ERR_NOPERMFORHOST     = "463"
	ERR_PASSWDMISMATCH    = "464"
	ERR_YOUREBANNEDCREEP  = "465"
	ERR_YOUWILLBEBANNED   = "466"
	ERR_KEYSET            = "467"
	ERR_CHANNELISFULL     = "471"
	ERR_UNKNOWNMODE       = "472"
	ERR_INVITEONLYCHAN    = "473"
	ERR_BANNEDFROMCHAN    = "474"
	ERR_BADCHANNELKEY     = "475"
	ERR_BADCHANMASK       = "476"
	ERR_NOCHANMODES       = "477"
	ERR_BANLISTFULL       = "478"
	ERR_NOPRIVILEGES      = "481"
	ERR_CHANOPRIVSNEEDED  = "482"
	ERR_CANTKILLSERVER    = "483"
	ERR_RESTRICTED        = "484"
	ERR_UNIQOPRIVSNEEDED  = "485"
	ERR_NOOPERHOST        = "491"
	ERR_NOSERVICEHOST     = "492"
	ERR_UMODEUNKNOWNFLAG  = "501"
	ERR_USERSDONTMATCH    = "502"
)

// Numeric is one entry of the reply table.
type Numeric struct {
	Name string
	Code string
}

var numerics = []Numeric{
	{"RPL_WELCOME", RPL_WELCOME},
	{"RPL_YOURHOST", RPL_YOURHOST},
	{"RPL_CREATED", RPL_CREATED},
	{"RPL_MYINFO", RPL_MYINFO},
	{"RPL_BOUNCE", RPL_BOUNCE},
	{"RPL_TRACELINK", RPL_TRACELINK},
	{"RPL_TRACECONNECTING", RPL_TRACECONNECTING},
	{"RPL_TRACEHANDSHAKE", RPL_TRACEHANDSHAKE},
	{"RPL_TRACEUNKNOWN", RPL_TRACEUNKNOWN},
	{"RPL_TRACEOPERATOR", RPL_TRACEOPERATOR},
	{"RPL_TRACEUSER", RPL_TRACEUSER},
	{"RPL_TRACESERVER", RPL_TRACESERVER},
	{"RPL_TRACESERVICE", RPL_TRACESERVICE},
	{"RPL_TRACENEWTYPE", RPL_TRACENEWTYPE},
	{"RPL_TRACECLASS", RPL_TRACECLASS},
	{"RPL_TRACERECONNECT", RPL_TRACERECONNECT},
	{"RPL_STATSLINKINFO", RPL_STATSLINKINFO},
	{"RPL_STATSCOMMANDS", RPL_STATSCOMMANDS},
	{"RPL_STATSCLINE", RPL_STATSCLINE},
	{"RPL_STATSNLINE", RPL_STATSNLINE},
	{"RPL_STATSILINE", RPL_STATSILINE},
	{"RPL_STATSKLINE", RPL_STATSKLINE},
	{"RPL_STATSQLINE", RPL_STATSQLINE},
	{"RPL_STATSYLINE", RPL_STATSYLINE},
	{"RPL_ENDOFSTATS", RPL_ENDOFSTATS},
	{"RPL_UMODEIS", RPL_UMODEIS},
	{"RPL_SERVICEINFO", RPL_SERVICEINFO},
	{"RPL_ENDOFSERVICES", RPL_ENDOFSERVICES},
	{"RPL_SERVICE", RPL_SERVICE},
	{"RPL_SERVLIST", RPL_SERVLIST},
	{"RPL_SERVLISTEND", RPL_SERVLISTEND},
	{"RPL_STATSVLINE", RPL_STATSVLINE},
	{"RPL_STATSLLINE", RPL_STATSLLINE},
	{"RPL_STATSUPTIME", RPL_STATSUPTIME},
	{"RPL_STATSOLINE", RPL_STATSOLINE},
	{"RPL_STATSHLINE", RPL_STATSHLINE},
	{"RPL_STATSPING", RPL_STATSPING},
	{"RPL_STATSBLINE", RPL_STATSBLINE},
	{"RPL_STATSDLINE", RPL_STATSDLINE},
	{"RPL_LUSERCLIENT", RPL_LUSERCLIENT},
	{"RPL_LUSEROP", RPL_LUSEROP},
	{"RPL_LUSERUNKNOWN", RPL_LUSERUNKNOWN},
	{"RPL_LUSERCHANNELS", RPL_LUSERCHANNELS},
	{"RPL_LUSERME", RPL_LUSERME},
	{"RPL_ADMINME", RPL_ADMINME},
	{"RPL_ADMINEMAIL", RPL_ADMINEMAIL},
	{"RPL_TRACELOG", RPL_TRACELOG},
	{"RPL_TRACEEND", RPL_TRACEEND},
	{"RPL_TRYAGAIN", RPL_TRYAGAIN},
	{"RPL_NONE", RPL_NONE},
	{"RPL_AWAY", RPL_AWAY},
	{"RPL_USERHOST", RPL_USERHOST},
	{"RPL_ISON", RPL_ISON},
	{"RPL_UNAWAY", RPL_UNAWAY},
	{"RPL_NOWAWAY", RPL_NOWAWAY},
	{"RPL_WHOISUSER", RPL_WHOISUSER},
	{"RPL_WHOISSERVER", RPL_WHOISSERVER},
	{"RPL_WHOISOPERATOR", RPL_WHOISOPERATOR},
	{"RPL_WHOWASUSER", RPL_WHOWASUSER},
	{"RPL_ENDOFWHO", RPL_ENDOFWHO},
	{"RPL_WHOISCHANOP", RPL_WHOISCHANOP},
	{"RPL_WHOISIDLE", RPL_WHOISIDLE},
	{"RPL_ENDOFWHOIS", RPL_ENDOFWHOIS},
	{"RPL_WHOISCHANNELS", RPL_WHOISCHANNELS},
	{"RPL_LISTSTART", RPL_LISTSTART},
	{"RPL_LIST", RPL_LIST},
	{"RPL_LISTEND", RPL_LISTEND},
	{"RPL_CHANNELMODEIS", RPL_CHANNELMODEIS},
	{"RPL_UNIQOPIS", RPL_UNIQOPIS},
	{"RPL_NOTOPIC", RPL_NOTOPIC},
	{"RPL_TOPIC", RPL_TOPIC},
	{"RPL_INVITING", RPL_INVITING},
	{"RPL_SUMMONING", RPL_SUMMONING},
	{"RPL_INVITELIST", RPL_INVITELIST},
	{"RPL_ENDOFINVITELIST", RPL_ENDOFINVITELIST},
	{"RPL_EXCEPTLIST", RPL_EXCEPTLIST},
	{"RPL_ENDOFEXCEPTLIST", RPL_ENDOFEXCEPTLIST},
	{"RPL_VERSION", RPL_VERSION},
	{"RPL_WHOREPLY", RPL_WHOREPLY},
	{"RPL_NAMREPLY", RPL_NAMREPLY},
	{"RPL_KILLDONE", RPL_KILLDONE},
	{"RPL_CLOSING", RPL_CLOSING},
	{"RPL_CLOSEEND", RPL_CLOSEEND},
	{"RPL_LINKS", RPL_LINKS},
	{"RPL_ENDOFLINKS", RPL_ENDOFLINKS},
	{"RPL_ENDOFNAMES", RPL_ENDOFNAMES},
	{"RPL_BANLIST", RPL_BANLIST},
	{"RPL_ENDOFBANLIST", RPL_ENDOFBANLIST},
	{"RPL_ENDOFWHOWAS", RPL_ENDOFWHOWAS},
	{"RPL_INFO", RPL_INFO},
	{"RPL_MOTD", RPL_MOTD},
	{"RPL_INFOSTART", RPL_INFOSTART},
	{"RPL_ENDOFINFO", RPL_ENDOFINFO},
	{"RPL_MOTDSTART", RPL_MOTDSTART},
	{"RPL_ENDOFMOTD", RPL_ENDOFMOTD},
	{"RPL_YOUREOPER", RPL_YOUREOPER},
	{"RPL_REHASHING", RPL_REHASHING},
	{"RPL_YOURESERVICE", RPL_YOURESERVICE},
	{"RPL_MYPORTIS", RPL_MYPORTIS},
	{"RPL_TIME", RPL_TIME},
	{"RPL_USERSSTART", RPL_USERSSTART},
	{"RPL_USERS", RPL_USERS},
	{"RPL_ENDOFUSERS", RPL_ENDOFUSERS},
	{"RPL_NOUSERS", RPL_NOUSERS},
	{"ERR_NOSUCHNICK", ERR_NOSUCHNICK},
	{"ERR_NOSUCHSERVER", ERR_NOSUCHSERVER},
	{"ERR_NOSUCHCHANNEL", ERR_NOSUCHCHANNEL},
	{"ERR_CANNOTSENDTOCHAN", ERR_CANNOTSENDTOCHAN},
	{"ERR_TOOMANYCHANNELS", ERR_TOOMANYCHANNELS},
	{"ERR_WASNOSUCHNICK", ERR_WASNOSUCHNICK},
	{"ERR_TOOMANYTARGETS", ERR_TOOMANYTARGETS},
	{"ERR_NOSUCHSERVICE", ERR_NOSUCHSERVICE},
	{"ERR_NOORIGIN", ERR_NOORIGIN},
	{"ERR_NORECIPIENT", ERR_NORECIPIENT},
	{"ERR_NOTEXTTOSEND", ERR_NOTEXTTOSEND},
	{"ERR_NOTOPLEVEL", ERR_NOTOPLEVEL},
	{"ERR_WILDTOPLEVEL", ERR_WILDTOPLEVEL},
	{"ERR_BADMASK", ERR_BADMASK},
	{"ERR_UNKNOWNCOMMAND", ERR_UNKNOWNCOMMAND},
	{"ERR_NOMOTD", ERR_NOMOTD},
	{"ERR_NOADMININFO", ERR_NOADMININFO},
	{"ERR_FILEERROR", ERR_FILEERROR},
	{"ERR_NONICKNAMEGIVEN", ERR_NONICKNAMEGIVEN},
	{"ERR_ERRONEUSNICKNAME", ERR_ERRONEUSNICKNAME},
	{"ERR_NICKNAMEINUSE", ERR_NICKNAMEINUSE},
	{"ERR_NICKCOLLISION", ERR_NICKCOLLISION},
	{"ERR_UNAVAILRESOURCE", ERR_UNAVAILRESOURCE},
	{"ERR_USERNOTINCHANNEL", ERR_USERNOTINCHANNEL},
	{"ERR_NOTONCHANNEL", ERR_NOTONCHANNEL},
	{"ERR_USERONCHANNEL", ERR_USERONCHANNEL},
	{"ERR_NOLOGIN", ERR_NOLOGIN},
	{"ERR_SUMMONDISABLED", ERR_SUMMONDISABLED},
	{"ERR_USERSDISABLED", ERR_USERSDISABLED},
	{"ERR_NOTREGISTERED", ERR_NOTREGISTERED},
	{"ERR_NEEDMOREPARAMS", ERR_NEEDMOREPARAMS},
	{"ERR_ALREADYREGISTERED", ERR_ALREADYREGISTERED},
	{"ERR_NOPERMFORHOST", ERR_NOPERMFORHOST},
	{"ERR_PASSWDMISMATCH", ERR_PASSWDMISMATCH},
	{"ERR_YOUREBANNEDCREEP", ERR_YOUREBANNEDCREEP},
	{"ERR_YOUWILLBEBANNED", ERR_YOUWILLBEBANNED},
	{"ERR_KEYSET", ERR_KEYSET},
	{"ERR_CHANNELISFULL", ERR_CHANNELISFULL},
	{"ERR_UNKNOWNMODE", ERR_UNKNOWNMODE},
	{"ERR_INVITEONLYCHAN", ERR_INVITEONLYCHAN},
	{"ERR_BANNEDFROMCHAN", ERR_BANNEDFROMCHAN},
	{"ERR_BADCHANNELKEY", ERR_BADCHANNELKEY},
	{"ERR_BADCHANMASK", ERR_BADCHANMASK},
	{"ERR_NOCHANMODES", ERR_NOCHANMODES},
	{"ERR_BANLISTFULL", ERR_BANLISTFULL},
	{"ERR_NOPRIVILEGES", ERR_NOPRIVILEGES},
	{"ERR_CHANOPRIVSNEEDED", ERR_CHANOPRIVSNEEDED},
	{"ERR_CANTKILLSERVER", ERR_CANTKILLSERVER},
	{"ERR_RESTRICTED", ERR_RESTRICTED},
	{"ERR_UNIQOPRIVSNEEDED", ERR_UNIQOPRIVSNEEDED},
	{"ERR_NOOPERHOST", ERR_NOOPERHOST},
	{"ERR_NOSERVICEHOST", ERR_NOSERVICEHOST},
	{"ERR_UMODEUNKNOWNFLAG", ERR_UMODEUNKNOWNFLAG},
	{"ERR_USERSDONTMATCH", ERR_USERSDONTMATCH},
}

var (
	byName = make(map[string]Numeric, len(numerics))
	byCode = make(map[string]Numeric, len(numerics))
)

func init() {
	for _, num := range numerics {
		byName[num.Name] = num
		byCode[num.Code] = num
	}
}

// FromName looks up a numeric by its conventional name, e.g.
// "RPL_WELCOME".
func FromName(name string) (num Numeric, ok bool) {
	num, ok = byName[name]
	return
}

// FromCode looks up a numeric by its three-digit code, e.g. "001".
func FromCode(code string) (num Numeric, ok bool) {
	num, ok = byCode[code]
	return
}

// FromInt looks up a numeric by integer value.
func FromInt(n int) (num Numeric, ok bool) {
	if n < 0 || n > 999 {
		return
	}
	return FromCode(fmt.Sprintf("%03d", n))
}

// All returns the full table, ordered by code.
func All() []Numeric {
	result := make([]Numeric, len(numerics))
	copy(result, numerics)
	return result
}
