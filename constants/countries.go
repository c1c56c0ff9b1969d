package constants

// Geography selectors accepted by the explore endpoint. The empty string is a
// valid selector meaning "worldwide"; every other value is an ISO 3166-1
// alpha-2 country code.
const (
	COUNTRY_ALL = ""

	COUNTRY_AD = "AD"
	COUNTRY_AE = "AE"
	COUNTRY_AF = "AF"
	COUNTRY_AG = "AG"
	COUNTRY_AI = "AI"
	COUNTRY_AL = "AL"
	COUNTRY_AM = "AM"
	COUNTRY_AO = "AO"
	COUNTRY_AQ = "AQ"
	COUNTRY_AR = "AR"
	COUNTRY_AS = "AS"
	COUNTRY_AT = "AT"
	COUNTRY_AU = "AU"
	COUNTRY_AW = "AW"
	COUNTRY_AX = "AX"
	COUNTRY_AZ = "AZ"
	COUNTRY_BA = "BA"
	COUNTRY_BB = "BB"
	COUNTRY_BD = "BD"
	COUNTRY_BE = "BE"
	COUNTRY_BF = "BF"
	COUNTRY_BG = "BG"
	COUNTRY_BH = "BH"
	COUNTRY_BI = "BI"
	COUNTRY_BJ = "BJ"
	COUNTRY_BL = "BL"
	COUNTRY_BM = "BM"
	COUNTRY_BN = "BN"
	COUNTRY_BO = "BO"
	COUNTRY_BQ = "BQ"
	COUNTRY_BR = "BR"
	COUNTRY_BS = "BS"
	COUNTRY_BT = "BT"
	COUNTRY_BV = "BV"
	COUNTRY_BW = "BW"
	COUNTRY_BY = "BY"
	COUNTRY_BZ = "BZ"
	COUNTRY_CA = "CA"
	COUNTRY_CC = "CC"
	COUNTRY_CD = "CD"
	COUNTRY_CF = "CF"
	COUNTRY_CG = "CG"
	COUNTRY_CH = "CH"
	COUNTRY_CI = "CI"
	COUNTRY_CK = "CK"
	COUNTRY_CL = "CL"
	COUNTRY_CM = "CM"
	COUNTRY_CN = "CN"
	COUNTRY_CO = "CO"
	COUNTRY_CR = "CR"
	COUNTRY_CU = "CU"
	COUNTRY_CV = "CV"
	COUNTRY_CW = "CW"
	COUNTRY_CX = "CX"
	COUNTRY_CY = "CY"
	COUNTRY_CZ = "CZ"
	COUNTRY_DE = "DE"
	COUNTRY_DJ = "DJ"
	COUNTRY_DK = "DK"
	COUNTRY_DM = "DM"
	COUNTRY_DO = "DO"
	COUNTRY_DZ = "DZ"
	COUNTRY_EC = "EC"
	COUNTRY_EE = "EE"
	COUNTRY_EG = "EG"
	COUNTRY_EH = "EH"
	COUNTRY_ER = "ER"
	COUNTRY_ES = "ES"
	COUNTRY_ET = "ET"
	COUNTRY_FI = "FI"
	COUNTRY_FJ = "FJ"
	COUNTRY_FK = "FK"
	COUNTRY_FM = "FM"
	COUNTRY_FO = "FO"
	COUNTRY_FR = "FR"
	COUNTRY_GA = "GA"
	COUNTRY_GB = "GB"
	COUNTRY_GD = "GD"
	COUNTRY_GE = "GE"
	COUNTRY_GF = "GF"
	COUNTRY_GG = "GG"
	COUNTRY_GH = "GH"
	COUNTRY_GI = "GI"
	COUNTRY_GL = "GL"
	COUNTRY_GM = "GM"
	COUNTRY_GN = "GN"
	COUNTRY_GP = "GP"
	COUNTRY_GQ = "GQ"
	COUNTRY_GR = "GR"
	COUNTRY_GS = "GS"
	COUNTRY_GT = "GT"
	COUNTRY_GU = "GU"
	COUNTRY_GW = "GW"
	COUNTRY_GY = "GY"
	COUNTRY_HK = "HK"
	COUNTRY_HM = "HM"
	COUNTRY_HN = "HN"
	COUNTRY_HR = "HR"
	COUNTRY_HT = "HT"
	COUNTRY_HU = "HU"
	COUNTRY_ID = "ID"
	COUNTRY_IE = "IE"
	COUNTRY_IL = "IL"
	COUNTRY_IM = "IM"
	COUNTRY_IN = "IN"
	COUNTRY_IO = "IO"
	COUNTRY_IQ = "IQ"
	COUNTRY_IR = "IR"
	COUNTRY_IS = "IS"
	COUNTRY_IT = "IT"
	COUNTRY_JE = "JE"
	COUNTRY_JM = "JM"
	COUNTRY_JO = "JO"
	COUNTRY_JP = "JP"
	COUNTRY_KE = "KE"
	COUNTRY_KG = "KG"
	COUNTRY_KH = "KH"
	COUNTRY_KI = "KI"
	COUNTRY_KM = "KM"
	COUNTRY_KN = "KN"
	COUNTRY_KP = "KP"
	COUNTRY_KR = "KR"
	COUNTRY_KW = "KW"
	COUNTRY_KY = "KY"
	COUNTRY_KZ = "KZ"
	COUNTRY_LA = "LA"
	COUNTRY_LB = "LB"
	COUNTRY_LC = "LC"
	COUNTRY_LI = "LI"
	COUNTRY_LK = "LK"
	COUNTRY_LR = "LR"
	COUNTRY_LS = "LS"
	COUNTRY_LT = "LT"
	COUNTRY_LU = "LU"
	COUNTRY_LV = "LV"
	COUNTRY_LY = "LY"
	COUNTRY_MA = "MA"
	COUNTRY_MC = "MC"
	COUNTRY_MD = "MD"
	COUNTRY_ME = "ME"
	COUNTRY_MF = "MF"
	COUNTRY_MG = "MG"
	COUNTRY_MH = "MH"
	COUNTRY_MK = "MK"
	COUNTRY_ML = "ML"
	COUNTRY_MM = "MM"
	COUNTRY_MN = "MN"
	COUNTRY_MO = "MO"
	COUNTRY_MP = "MP"
	COUNTRY_MQ = "MQ"
	COUNTRY_MR = "MR"
	COUNTRY_MS = "MS"
	COUNTRY_MT = "MT"
	COUNTRY_MU = "MU"
	COUNTRY_MV = "MV"
	COUNTRY_MW = "MW"
	COUNTRY_MX = "MX"
	COUNTRY_MY = "MY"
	COUNTRY_MZ = "MZ"
	COUNTRY_NA = "NA"
	COUNTRY_NC = "NC"
	COUNTRY_NE = "NE"
	COUNTRY_NF = "NF"
	COUNTRY_NG = "NG"
	COUNTRY_NI = "NI"
	COUNTRY_NL = "NL"
	COUNTRY_NO = "NO"
	COUNTRY_NP = "NP"
	COUNTRY_NR = "NR"
	COUNTRY_NU = "NU"
	COUNTRY_NZ = "NZ"
	COUNTRY_OM = "OM"
	COUNTRY_PA = "PA"
	COUNTRY_PE = "PE"
	COUNTRY_PF = "PF"
	COUNTRY_PG = "PG"
	COUNTRY_PH = "PH"
	COUNTRY_PK = "PK"
	COUNTRY_PL = "PL"
	COUNTRY_PM = "PM"
	COUNTRY_PN = "PN"
	COUNTRY_PR = "PR"
	COUNTRY_PS = "PS"
	COUNTRY_PT = "PT"
	COUNTRY_PW = "PW"
	COUNTRY_PY = "PY"
	COUNTRY_QA = "QA"
	COUNTRY_RE = "RE"
	COUNTRY_RO = "RO"
	COUNTRY_RS = "RS"
	COUNTRY_RU = "RU"
	COUNTRY_RW = "RW"
	COUNTRY_SA = "SA"
	COUNTRY_SB = "SB"
	COUNTRY_SC = "SC"
	COUNTRY_SD = "SD"
	COUNTRY_SE = "SE"
	COUNTRY_SG = "SG"
	COUNTRY_SH = "SH"
	COUNTRY_SI = "SI"
	COUNTRY_SJ = "SJ"
	COUNTRY_SK = "SK"
	COUNTRY_SL = "SL"
	COUNTRY_SM = "SM"
	COUNTRY_SN = "SN"
	COUNTRY_SO = "SO"
	COUNTRY_SR = "SR"
	COUNTRY_SS = "SS"
	COUNTRY_ST = "ST"
	COUNTRY_SV = "SV"
	COUNTRY_SX = "SX"
	COUNTRY_SY = "SY"
	COUNTRY_SZ = "SZ"
	COUNTRY_TC = "TC"
	COUNTRY_TD = "TD"
	COUNTRY_TF = "TF"
	COUNTRY_TG = "TG"
	COUNTRY_TH = "TH"
	COUNTRY_TJ = "TJ"
	COUNTRY_TK = "TK"
	COUNTRY_TL = "TL"
	COUNTRY_TM = "TM"
	COUNTRY_TN = "TN"
	COUNTRY_TO = "TO"
	COUNTRY_TR = "TR"
	COUNTRY_TT = "TT"
	COUNTRY_TV = "TV"
	COUNTRY_TW = "TW"
	COUNTRY_TZ = "TZ"
	COUNTRY_UA = "UA"
	COUNTRY_UG = "UG"
	COUNTRY_UM = "UM"
	COUNTRY_US = "US"
	COUNTRY_UY = "UY"
	COUNTRY_UZ = "UZ"
	COUNTRY_VA = "VA"
	COUNTRY_VC = "VC"
	COUNTRY_VE = "VE"
	COUNTRY_VG = "VG"
	COUNTRY_VI = "VI"
	COUNTRY_VN = "VN"
	COUNTRY_VU = "VU"
	COUNTRY_WF = "WF"
	COUNTRY_WS = "WS"
	COUNTRY_YE = "YE"
	COUNTRY_YT = "YT"
	COUNTRY_ZA = "ZA"
	COUNTRY_ZM = "ZM"
	COUNTRY_ZW = "ZW"
)

var CountryValues = []string{
	COUNTRY_ALL,
	COUNTRY_AD, COUNTRY_AE, COUNTRY_AF, COUNTRY_AG, COUNTRY_AI, COUNTRY_AL, COUNTRY_AM, COUNTRY_AO,
	COUNTRY_AQ, COUNTRY_AR, COUNTRY_AS, COUNTRY_AT, COUNTRY_AU, COUNTRY_AW, COUNTRY_AX, COUNTRY_AZ,
	COUNTRY_BA, COUNTRY_BB, COUNTRY_BD, COUNTRY_BE, COUNTRY_BF, COUNTRY_BG, COUNTRY_BH, COUNTRY_BI,
	COUNTRY_BJ, COUNTRY_BL, COUNTRY_BM, COUNTRY_BN, COUNTRY_BO, COUNTRY_BQ, COUNTRY_BR, COUNTRY_BS,
	COUNTRY_BT, COUNTRY_BV, COUNTRY_BW, COUNTRY_BY, COUNTRY_BZ, COUNTRY_CA, COUNTRY_CC, COUNTRY_CD,
	COUNTRY_CF, COUNTRY_CG, COUNTRY_CH, COUNTRY_CI, COUNTRY_CK, COUNTRY_CL, COUNTRY_CM, COUNTRY_CN,
	COUNTRY_CO, COUNTRY_CR, COUNTRY_CU, COUNTRY_CV, COUNTRY_CW, COUNTRY_CX, COUNTRY_CY, COUNTRY_CZ,
	COUNTRY_DE, COUNTRY_DJ, COUNTRY_DK, COUNTRY_DM, COUNTRY_DO, COUNTRY_DZ, COUNTRY_EC, COUNTRY_EE,
	COUNTRY_EG, COUNTRY_EH, COUNTRY_ER, COUNTRY_ES, COUNTRY_ET, COUNTRY_FI, COUNTRY_FJ, COUNTRY_FK,
	COUNTRY_FM, COUNTRY_FO, COUNTRY_FR, COUNTRY_GA, COUNTRY_GB, COUNTRY_GD, COUNTRY_GE, COUNTRY_GF,
	COUNTRY_GG, COUNTRY_GH, COUNTRY_GI, COUNTRY_GL, COUNTRY_GM, COUNTRY_GN, COUNTRY_GP, COUNTRY_GQ,
	COUNTRY_GR, COUNTRY_GS, COUNTRY_GT, COUNTRY_GU, COUNTRY_GW, COUNTRY_GY, COUNTRY_HK, COUNTRY_HM,
	COUNTRY_HN, COUNTRY_HR, COUNTRY_HT, COUNTRY_HU, COUNTRY_ID, COUNTRY_IE, COUNTRY_IL, COUNTRY_IM,
	COUNTRY_IN, COUNTRY_IO, COUNTRY_IQ, COUNTRY_IR, COUNTRY_IS, COUNTRY_IT, COUNTRY_JE, COUNTRY_JM,
	COUNTRY_JO, COUNTRY_JP, COUNTRY_KE, COUNTRY_KG, COUNTRY_KH, COUNTRY_KI, COUNTRY_KM, COUNTRY_KN,
	COUNTRY_KP, COUNTRY_KR, COUNTRY_KW, COUNTRY_KY, COUNTRY_KZ, COUNTRY_LA, COUNTRY_LB, COUNTRY_LC,
	COUNTRY_LI, COUNTRY_LK, COUNTRY_LR, COUNTRY_LS, COUNTRY_LT, COUNTRY_LU, COUNTRY_LV, COUNTRY_LY,
	COUNTRY_MA, COUNTRY_MC, COUNTRY_MD, COUNTRY_ME, COUNTRY_MF, COUNTRY_MG, COUNTRY_MH, COUNTRY_MK,
	COUNTRY_ML, COUNTRY_MM, COUNTRY_MN, COUNTRY_MO, COUNTRY_MP, COUNTRY_MQ, COUNTRY_MR, COUNTRY_MS,
	COUNTRY_MT, COUNTRY_MU, COUNTRY_MV, COUNTRY_MW, COUNTRY_MX, COUNTRY_MY, COUNTRY_MZ, COUNTRY_NA,
	COUNTRY_NC, COUNTRY_NE, COUNTRY_NF, COUNTRY_NG, COUNTRY_NI, COUNTRY_NL, COUNTRY_NO, COUNTRY_NP,
	COUNTRY_NR, COUNTRY_NU, COUNTRY_NZ, COUNTRY_OM, COUNTRY_PA, COUNTRY_PE, COUNTRY_PF, COUNTRY_PG,
	COUNTRY_PH, COUNTRY_PK, COUNTRY_PL, COUNTRY_PM, COUNTRY_PN, COUNTRY_PR, COUNTRY_PS, COUNTRY_PT,
	COUNTRY_PW, COUNTRY_PY, COUNTRY_QA, COUNTRY_RE, COUNTRY_RO, COUNTRY_RS, COUNTRY_RU, COUNTRY_RW,
	COUNTRY_SA, COUNTRY_SB, COUNTRY_SC, COUNTRY_SD, COUNTRY_SE, COUNTRY_SG, COUNTRY_SH, COUNTRY_SI,
	COUNTRY_SJ, COUNTRY_SK, COUNTRY_SL, COUNTRY_SM, COUNTRY_SN, COUNTRY_SO, COUNTRY_SR, COUNTRY_SS,
	COUNTRY_ST, COUNTRY_SV, COUNTRY_SX, COUNTRY_SY, COUNTRY_SZ, COUNTRY_TC, COUNTRY_TD, COUNTRY_TF,
	COUNTRY_TG, COUNTRY_TH, COUNTRY_TJ, COUNTRY_TK, COUNTRY_TL, COUNTRY_TM, COUNTRY_TN, COUNTRY_TO,
	COUNTRY_TR, COUNTRY_TT, COUNTRY_TV, COUNTRY_TW, COUNTRY_TZ, COUNTRY_UA, COUNTRY_UG, COUNTRY_UM,
	COUNTRY_US, COUNTRY_UY, COUNTRY_UZ, COUNTRY_VA, COUNTRY_VC, COUNTRY_VE, COUNTRY_VG, COUNTRY_VI,
	COUNTRY_VN, COUNTRY_VU, COUNTRY_WF, COUNTRY_WS, COUNTRY_YE, COUNTRY_YT, COUNTRY_ZA, COUNTRY_ZM,
	COUNTRY_ZW,
}
