package serial

// Captured serials used across the package tests. Each decodes to a
// known token stream; the class mod one is deliberately broken and
// fails mid-string.
const (
	serialVladofSMG        = "@Ugr$ZCm/&tH!t{KgK/Shxu>k"
	serialEnergyShield     = "@Uge8jxm/)@{!gQaYMipv(G&-b*Z~_"
	serialMaliwanSMG       = "@Ugw$Yw2}TYgOvDMQhbq)?p-8<%Z7L5c7pfd;cmn_"
	serialVladofSniper     = "@Uguq~c2}TYg3/>%aRG}8ts7KXA-9&{!<w2c7r9#z0g+sMN<wF1"
	serialShieldVariant    = "@Uge98>m/)}}!c5JeNWCvCXc7"
	serialGrenadeGadget    = "@Uge8Xtm/)}}!elF;NmXinbwH6?9}OPi1ON"
	serialBrokenClassMod   = "@Uge8;)m/)@{!X>!SqTZJibf`hSk4B2r6#)"
	serialBareEquipment    = "@Ugr$)Nm/%P$!bIqxL{(~iG&p36L=sIx00"
	serialJakobsPistol     = "@Ugb)KvFg_4rJ}%H-RG}IbsZG^E#X_Y-00"
)

var roundTripSerials = []string{
	serialVladofSMG,
	serialEnergyShield,
	serialMaliwanSMG,
	serialVladofSniper,
	serialShieldVariant,
	serialGrenadeGadget,
	serialBareEquipment,
	serialJakobsPistol,
}
