package universe

// stocks is the NSE F&O universe screened by default. Symbols without a
// listed derivative series keep HasOptions false and are skipped by the
// trade runner.
var stocks = []Stock{
	{Symbol: "BAJAJ-AUTO", Name: "BAJAJ AUTO LIMITED", ISIN: "INE917I01010", HasOptions: true},
	{Symbol: "360ONE", Name: "360 ONE WAM LIMITED", ISIN: "INE466L01038", HasOptions: true},
	{Symbol: "BDL", Name: "BHARAT DYNAMICS LIMITED", ISIN: "INE171Z01026", HasOptions: true},
	{Symbol: "COFORGE", Name: "COFORGE LIMITED", ISIN: "INE591G01025", HasOptions: true},
	{Symbol: "CDSL", Name: "CENTRAL DEPO SER (I) LTD", ISIN: "INE736A01011", HasOptions: true},
	{Symbol: "BIOCON", Name: "BIOCON LIMITED.", ISIN: "INE376G01013", HasOptions: true},
	{Symbol: "BHARATFORG", Name: "BHARAT FORGE LTD", ISIN: "INE465A01025", HasOptions: true},
	{Symbol: "ALKEM", Name: "ALKEM LABORATORIES LTD.", ISIN: "INE540L01014", HasOptions: true},
	{Symbol: "CANBK", Name: "CANARA BANK", ISIN: "INE476A01022", HasOptions: true},
	{Symbol: "BANKBARODA", Name: "BANK OF BARODA", ISIN: "INE028A01039", HasOptions: true},
	{Symbol: "ABCAPITAL", Name: "ADITYA BIRLA CAPITAL LTD.", ISIN: "INE674K01013", HasOptions: true},
	{Symbol: "ASTRAL", Name: "ASTRAL LIMITED", ISIN: "INE006I01046", HasOptions: true},
	{Symbol: "BRITANNIA", Name: "BRITANNIA INDUSTRIES LTD", ISIN: "INE216A01030", HasOptions: true},
	{Symbol: "CONCOR", Name: "CONTAINER CORP OF IND LTD", ISIN: "INE111A01025", HasOptions: true},
	{Symbol: "CHOLAFIN", Name: "CHOLAMANDALAM IN & FIN CO", ISIN: "INE121A01024", HasOptions: true},
	{Symbol: "ADANIPORTS", Name: "ADANI PORT & SEZ LTD", ISIN: "INE742F01042", HasOptions: true},
	{Symbol: "ADANIENSOL", Name: "ADANI ENERGY SOLUTION LTD", ISIN: "INE931S01010", HasOptions: true},
	{Symbol: "ASIANPAINT", Name: "ASIAN PAINTS LIMITED", ISIN: "INE021A01026", HasOptions: true},
	{Symbol: "CAMS", Name: "COMPUTER AGE MNGT SER LTD", ISIN: "INE596I01020", HasOptions: true},
	{Symbol: "APLAPOLLO", Name: "APL APOLLO TUBES LTD", ISIN: "INE702C01027", HasOptions: true},
	{Symbol: "ABB", Name: "ABB INDIA LIMITED", ISIN: "INE117A01022", HasOptions: true},
	{Symbol: "APOLLOHOSP", Name: "APOLLO HOSPITALS ENTER. L", ISIN: "INE437A01024", HasOptions: true},
	{Symbol: "COALINDIA", Name: "COAL INDIA LTD", ISIN: "INE522F01014", HasOptions: true},
	{Symbol: "BAJFINANCE", Name: "BAJAJ FINANCE LIMITED", ISIN: "INE296A01032", HasOptions: true},
	{Symbol: "AMBUJACEM", Name: "AMBUJA CEMENTS LTD", ISIN: "INE079A01024", HasOptions: true},
	{Symbol: "CROMPTON", Name: "CROMPT GREA CON ELEC LTD", ISIN: "INE299U01018", HasOptions: true},
	{Symbol: "AMBER", Name: "AMBER ENTERPRISES (I) LTD", ISIN: "INE371P01015", HasOptions: true},
	{Symbol: "BAJAJFINSV", Name: "BAJAJ FINSERV LTD.", ISIN: "INE918I01026", HasOptions: true},
	{Symbol: "BHARTIARTL", Name: "BHARTI AIRTEL LIMITED", ISIN: "INE397D01024", HasOptions: true},
	{Symbol: "CIPLA", Name: "CIPLA LTD", ISIN: "INE059A01026", HasOptions: true},
	{Symbol: "ANGELONE", Name: "ANGEL ONE LIMITED", ISIN: "INE732I01013", HasOptions: true},
	{Symbol: "AUBANK", Name: "AU SMALL FINANCE BANK LTD", ISIN: "INE949L01017", HasOptions: true},
	{Symbol: "CUMMINSIND", Name: "CUMMINS INDIA LTD", ISIN: "INE298A01020", HasOptions: true},
	{Symbol: "CYIENT", Name: "CYIENT LIMITED", ISIN: "INE136B01020", HasOptions: true},
	{Symbol: "BSE", Name: "BSE LIMITED", ISIN: "INE118H01025", HasOptions: true},
	{Symbol: "ADANIGREEN", Name: "ADANI GREEN ENERGY LTD", ISIN: "INE364U01010", HasOptions: true},
	{Symbol: "AXISBANK", Name: "AXIS BANK LIMITED", ISIN: "INE238A01034", HasOptions: true},
	{Symbol: "BEL", Name: "BHARAT ELECTRONICS LTD", ISIN: "INE263A01024", HasOptions: true},
	{Symbol: "BANKINDIA", Name: "BANK OF INDIA", ISIN: "INE084A01016", HasOptions: true},
	{Symbol: "BOSCHLTD", Name: "BOSCH LIMITED", ISIN: "INE323A01026", HasOptions: true},
	{Symbol: "BANDHANBNK", Name: "BANDHAN BANK LIMITED", ISIN: "INE545U01014", HasOptions: true},
	{Symbol: "AUROPHARMA", Name: "AUROBINDO PHARMA LTD", ISIN: "INE406A01037", HasOptions: true},
	{Symbol: "ASHOKLEY", Name: "ASHOK LEYLAND LTD", ISIN: "INE208A01029", HasOptions: true},
	{Symbol: "BLUESTARCO", Name: "BLUE STAR LIMITED", ISIN: "INE472A01039", HasOptions: true},
	{Symbol: "CGPOWER", Name: "CG POWER AND IND SOL LTD", ISIN: "INE067A01029", HasOptions: true},
	{Symbol: "ADANIENT", Name: "ADANI ENTERPRISES LIMITED", ISIN: "INE423A01024", HasOptions: true},
	{Symbol: "COLPAL", Name: "COLGATE PALMOLIVE LTD.", ISIN: "INE259A01022", HasOptions: true},
	{Symbol: "BHEL", Name: "BHEL", ISIN: "INE257A01026", HasOptions: true},
	{Symbol: "BPCL", Name: "BHARAT PETROLEUM CORP LT", ISIN: "INE029A01011", HasOptions: true},
	{Symbol: "DALBHARAT", Name: "DALMIA BHARAT LIMITED", ISIN: "INE00R701025", HasOptions: true},
	{Symbol: "HINDZINC", Name: "HINDUSTAN ZINC LIMITED", ISIN: "INE267A01025", HasOptions: true},
	{Symbol: "GODREJCP", Name: "GODREJ CONSUMER PRODUCTS", ISIN: "INE102D01028", HasOptions: true},
	{Symbol: "INFY", Name: "INFOSYS LIMITED", ISIN: "INE009A01021", HasOptions: true},
	{Symbol: "DIVISLAB", Name: "DIVI S LABORATORIES LTD", ISIN: "INE361B01024", HasOptions: true},
	{Symbol: "HINDUNILVR", Name: "HINDUSTAN UNILEVER LTD.", ISIN: "INE030A01027", HasOptions: true},
	{Symbol: "HEROMOTOCO", Name: "HERO MOTOCORP LIMITED", ISIN: "INE158A01026", HasOptions: true},
	{Symbol: "HINDPETRO", Name: "HINDUSTAN PETROLEUM CORP", ISIN: "INE094A01015", HasOptions: true},
	{Symbol: "ICICIPRULI", Name: "ICICI PRU LIFE INS CO LTD", ISIN: "INE726G01019", HasOptions: true},
	{Symbol: "GODREJPROP", Name: "GODREJ PROPERTIES LTD", ISIN: "INE484J01027", HasOptions: true},
	{Symbol: "GRASIM", Name: "GRASIM INDUSTRIES LTD", ISIN: "INE047A01021", HasOptions: true},
	{Symbol: "HFCL", Name: "HFCL LIMITED", ISIN: "INE548A01028", HasOptions: true},
	{Symbol: "IDEA", Name: "VODAFONE IDEA LIMITED", ISIN: "INE669E01016", HasOptions: true},
	{Symbol: "INOXWIND", Name: "INOX WIND LIMITED", ISIN: "INE066P01011", HasOptions: true},
	{Symbol: "IRCTC", Name: "INDIAN RAIL TOUR CORP LTD", ISIN: "INE335Y01020", HasOptions: true},
	{Symbol: "IRFC", Name: "INDIAN RAILWAY FIN CORP L", ISIN: "INE053F01010", HasOptions: true},
	{Symbol: "HDFCAMC", Name: "HDFC AMC LIMITED", ISIN: "INE127D01025", HasOptions: true},
	{Symbol: "IEX", Name: "INDIAN ENERGY EXC LTD", ISIN: "INE022Q01020", HasOptions: true},
	{Symbol: "INDHOTEL", Name: "THE INDIAN HOTELS CO. LTD", ISIN: "INE053A01029", HasOptions: true},
	{Symbol: "INDUSTOWER", Name: "INDUS TOWERS LIMITED", ISIN: "INE121J01017", HasOptions: true},
	{Symbol: "HAL", Name: "HINDUSTAN AERONAUTICS LTD", ISIN: "INE066F01020", HasOptions: true},
	{Symbol: "HDFCBANK", Name: "HDFC BANK LTD", ISIN: "INE040A01034", HasOptions: true},
	{Symbol: "IREDA", Name: "INDIAN RENEWABLE ENERGY", ISIN: "INE202E01016", HasOptions: true},
	{Symbol: "EICHERMOT", Name: "EICHER MOTORS LTD", ISIN: "INE066A01021", HasOptions: true},
	{Symbol: "DLF", Name: "DLF LIMITED", ISIN: "INE271C01023", HasOptions: true},
	{Symbol: "DRREDDY", Name: "DR. REDDY S LABORATORIES", ISIN: "INE089A01031", HasOptions: true},
	{Symbol: "INDIGO", Name: "INTERGLOBE AVIATION LTD", ISIN: "INE646L01027", HasOptions: true},
	{Symbol: "EXIDEIND", Name: "EXIDE INDUSTRIES LTD", ISIN: "INE302A01020", HasOptions: true},
	{Symbol: "DMART", Name: "AVENUE SUPERMARTS LIMITED", ISIN: "INE192R01011", HasOptions: true},
	{Symbol: "HDFCLIFE", Name: "HDFC LIFE INS CO LTD", ISIN: "INE795G01014", HasOptions: true},
	{Symbol: "INDUSINDBK", Name: "INDUSIND BANK LIMITED", ISIN: "INE095A01012", HasOptions: true},
	{Symbol: "INDIANB", Name: "INDIAN BANK", ISIN: "INE562A01011", HasOptions: true},
	{Symbol: "DIXON", Name: "DIXON TECHNO (INDIA) LTD", ISIN: "INE935N01020", HasOptions: true},
	{Symbol: "HINDALCO", Name: "HINDALCO INDUSTRIES LTD", ISIN: "INE038A01020", HasOptions: true},
	{Symbol: "HUDCO", Name: "HSG & URBAN DEV CORPN LTD", ISIN: "INE031A01017", HasOptions: true},
	{Symbol: "IOC", Name: "INDIAN OIL CORP LTD", ISIN: "INE242A01010", HasOptions: true},
	{Symbol: "FORTIS", Name: "FORTIS HEALTHCARE LTD", ISIN: "INE061F01013", HasOptions: true},
	{Symbol: "HCLTECH", Name: "HCL TECHNOLOGIES LTD", ISIN: "INE860A01027", HasOptions: true},
	{Symbol: "FEDERALBNK", Name: "FEDERAL BANK LTD", ISIN: "INE171A01029", HasOptions: true},
	{Symbol: "GMRAIRPORT", Name: "GMR AIRPORTS LIMITED", ISIN: "INE776C01039", HasOptions: true},
	{Symbol: "HAVELLS", Name: "HAVELLS INDIA LIMITED", ISIN: "INE176B01034", HasOptions: true},
	{Symbol: "IIFL", Name: "IIFL FINANCE LIMITED", ISIN: "INE530B01024", HasOptions: true},
	{Symbol: "ETERNAL", Name: "ETERNAL LIMITED", ISIN: "INE758T01015", HasOptions: true},
	{Symbol: "ITC", Name: "ITC LTD", ISIN: "INE154A01025", HasOptions: true},
	{Symbol: "DELHIVERY", Name: "DELHIVERY LIMITED", ISIN: "INE148O01028", HasOptions: true},
	{Symbol: "ICICIBANK", Name: "ICICI BANK LTD.", ISIN: "INE090A01021", HasOptions: true},
	{Symbol: "IDFCFIRSTB", Name: "IDFC FIRST BANK LIMITED", ISIN: "INE092T01019", HasOptions: true},
	{Symbol: "ICICIGI", Name: "ICICI LOMBARD GIC LIMITED", ISIN: "INE765G01017", HasOptions: true},
	{Symbol: "GAIL", Name: "GAIL (INDIA) LTD", ISIN: "INE129A01019", HasOptions: true},
	{Symbol: "GLENMARK", Name: "GLENMARK PHARMACEUTICALS", ISIN: "INE935A01035", HasOptions: true},
	{Symbol: "DABUR", Name: "DABUR INDIA LTD", ISIN: "INE016A01026", HasOptions: true},
	{Symbol: "JINDALSTEL", Name: "JINDAL STEEL LIMITED", ISIN: "INE749A01030", HasOptions: true},
	{Symbol: "KAYNES", Name: "KAYNES TECHNOLOGY IND LTD", ISIN: "INE918Z01012", HasOptions: true},
	{Symbol: "KOTAKBANK", Name: "KOTAK MAHINDRA BANK LTD", ISIN: "INE237A01028", HasOptions: true},
	{Symbol: "LODHA", Name: "LODHA DEVELOPERS LIMITED", ISIN: "INE670K01029", HasOptions: true},
	{Symbol: "LTF", Name: "L&T FINANCE LIMITED", ISIN: "INE498L01015", HasOptions: true},
	{Symbol: "LUPIN", Name: "LUPIN LIMITED", ISIN: "INE326A01037", HasOptions: true},
	{Symbol: "LICHSGFIN", Name: "LIC HOUSING FINANCE LTD", ISIN: "INE115A01026", HasOptions: true},
	{Symbol: "JSWENERGY", Name: "JSW ENERGY LIMITED", ISIN: "INE121E01018", HasOptions: true},
	{Symbol: "JSWSTEEL", Name: "JSW STEEL LIMITED", ISIN: "INE019A01038", HasOptions: true},
	{Symbol: "LICI", Name: "LIFE INSURA CORP OF INDIA", ISIN: "INE0J1Y01017", HasOptions: true},
	{Symbol: "LAURUSLABS", Name: "LAURUS LABS LIMITED", ISIN: "INE947Q01028", HasOptions: true},
	{Symbol: "JIOFIN", Name: "JIO FIN SERVICES LTD", ISIN: "INE758E01017", HasOptions: true},
	{Symbol: "KFINTECH", Name: "KFIN TECHNOLOGIES LIMITED", ISIN: "INE138Y01010", HasOptions: true},
	{Symbol: "JUBLFOOD", Name: "JUBILANT FOODWORKS LTD", ISIN: "INE797F01020", HasOptions: true},
	{Symbol: "KPITTECH", Name: "KPIT TECHNOLOGIES LIMITED", ISIN: "INE04I401011", HasOptions: true},
	{Symbol: "KEI", Name: "KEI INDUSTRIES LTD.", ISIN: "INE878B01027", HasOptions: true},
	{Symbol: "LTIM", Name: "LTIMINDTREE LIMITED", ISIN: "INE214T01019", HasOptions: true},
	{Symbol: "KALYANKJIL", Name: "KALYAN JEWELLERS IND LTD", ISIN: "INE303R01014", HasOptions: true},
	{Symbol: "LT", Name: "LARSEN & TOUBRO LTD.", ISIN: "INE018A01030", HasOptions: true},
	{Symbol: "MARUTI", Name: "MARUTI SUZUKI INDIA LTD.", ISIN: "INE585B01010", HasOptions: true},
	{Symbol: "MANAPPURAM", Name: "MANAPPURAM FINANCE LTD", ISIN: "INE522D01027", HasOptions: true},
	{Symbol: "MCX", Name: "MULTI COMMODITY EXCHANGE", ISIN: "INE745G01035", HasOptions: true},
	{Symbol: "MAXHEALTH", Name: "MAX HEALTHCARE INS LTD", ISIN: "INE027H01010", HasOptions: true},
	{Symbol: "MUTHOOTFIN", Name: "MUTHOOT FINANCE LIMITED", ISIN: "INE414G01012", HasOptions: true},
	{Symbol: "MPHASIS", Name: "MPHASIS LIMITED", ISIN: "INE356A01018", HasOptions: true},
	{Symbol: "MARICO", Name: "MARICO LIMITED", ISIN: "INE196A01026", HasOptions: true},
	{Symbol: "MANKIND", Name: "MANKIND PHARMA LIMITED", ISIN: "INE634S01028", HasOptions: true},
	{Symbol: "MOTHERSON", Name: "SAMVARDHANA MOTHERSON INT", ISIN: "INE775A01035", HasOptions: true},
	{Symbol: "MFSL", Name: "MAX FINANCIAL SERV LTD", ISIN: "INE180A01020", HasOptions: true},
	{Symbol: "MAZDOCK", Name: "MAZAGON DOCK SHIPBUIL LTD", ISIN: "INE249Z01020", HasOptions: true},
	{Symbol: "M&M", Name: "MAHINDRA & MAHINDRA LTD", ISIN: "INE101A01026", HasOptions: true},
	{Symbol: "NATIONALUM", Name: "NATIONAL ALUMINIUM CO LTD", ISIN: "INE139A01034", HasOptions: true},
	{Symbol: "NUVAMA", Name: "NUVAMA WEALTH MANAGE LTD", ISIN: "INE531F01015", HasOptions: true},
	{Symbol: "OBEROIRLTY", Name: "OBEROI REALTY LIMITED", ISIN: "INE093I01010", HasOptions: true},
	{Symbol: "NMDC", Name: "NMDC LTD.", ISIN: "INE584A01023", HasOptions: true},
	{Symbol: "NCC", Name: "NCC LIMITED", ISIN: "INE868B01028", HasOptions: true},
	{Symbol: "ONGC", Name: "OIL AND NATURAL GAS CORP.", ISIN: "INE213A01029", HasOptions: true},
	{Symbol: "NTPC", Name: "NTPC LTD", ISIN: "INE733E01010", HasOptions: true},
	{Symbol: "NYKAA", Name: "FSN E COMMERCE VENTURES", ISIN: "INE388Y01029", HasOptions: true},
	{Symbol: "NESTLEIND", Name: "NESTLE INDIA LIMITED", ISIN: "INE239A01024", HasOptions: true},
	{Symbol: "NBCC", Name: "NBCC (INDIA) LIMITED", ISIN: "INE095N01031", HasOptions: true},
	{Symbol: "NAUKRI", Name: "INFO EDGE (I) LTD", ISIN: "INE663F01032", HasOptions: true},
	{Symbol: "NHPC", Name: "NHPC LTD", ISIN: "INE848E01016", HasOptions: true},
	{Symbol: "OFSS", Name: "ORACLE FIN SERV SOFT LTD.", ISIN: "INE881D01027", HasOptions: true},
	{Symbol: "OIL", Name: "OIL INDIA LTD", ISIN: "INE274J01014", HasOptions: true},
	{Symbol: "PNB", Name: "PUNJAB NATIONAL BANK", ISIN: "INE160A01022", HasOptions: true},
	{Symbol: "PFC", Name: "POWER FIN CORP LTD.", ISIN: "INE134E01011", HasOptions: true},
	{Symbol: "PATANJALI", Name: "PATANJALI FOODS LIMITED", ISIN: "INE619A01035", HasOptions: true},
	{Symbol: "PRESTIGE", Name: "PRESTIGE ESTATE LTD", ISIN: "INE811K01011", HasOptions: true},
	{Symbol: "PHOENIXLTD", Name: "THE PHOENIX MILLS LTD", ISIN: "INE211B01039", HasOptions: true},
	{Symbol: "PGEL", Name: "PG ELECTROPLAST LTD", ISIN: "INE457L01029", HasOptions: true},
	{Symbol: "PIIND", Name: "PI INDUSTRIES LTD", ISIN: "INE603J01030", HasOptions: true},
	{Symbol: "POWERGRID", Name: "POWER GRID CORP. LTD.", ISIN: "INE752E01010", HasOptions: true},
	{Symbol: "PIDILITIND", Name: "PIDILITE INDUSTRIES LTD", ISIN: "INE318A01026", HasOptions: true},
	{Symbol: "PAYTM", Name: "ONE 97 COMMUNICATIONS LTD", ISIN: "INE982J01020", HasOptions: true},
	{Symbol: "PAGEIND", Name: "PAGE INDUSTRIES LTD", ISIN: "INE761H01022", HasOptions: true},
	{Symbol: "PNBHOUSING", Name: "PNB HOUSING FIN LTD.", ISIN: "INE572E01012", HasOptions: true},
	{Symbol: "PPLPHARMA", Name: "PIRAMAL PHARMA LIMITED", ISIN: "INE0DK501011", HasOptions: true},
	{Symbol: "PERSISTENT", Name: "PERSISTENT SYSTEMS LTD", ISIN: "INE262H01021", HasOptions: true},
	{Symbol: "POLICYBZR", Name: "PB FINTECH LIMITED", ISIN: "INE417T01026", HasOptions: true},
	{Symbol: "POLYCAB", Name: "POLYCAB INDIA LIMITED", ISIN: "INE455K01017", HasOptions: true},
	{Symbol: "PETRONET", Name: "PETRONET LNG LIMITED", ISIN: "INE347G01014", HasOptions: true},
	{Symbol: "POWERINDIA", Name: "HITACHI ENERGY INDIA LTD", ISIN: "INE07Y701011", HasOptions: true},
	{Symbol: "SHREECEM", Name: "SHREE CEMENT LIMITED", ISIN: "INE070A01015", HasOptions: true},
	{Symbol: "SHRIRAMFIN", Name: "SHRIRAM FINANCE LIMITED", ISIN: "INE721A01047", HasOptions: true},
	{Symbol: "SBILIFE", Name: "SBI LIFE INSURANCE CO LTD", ISIN: "INE123W01016", HasOptions: true},
	{Symbol: "SYNGENE", Name: "SYNGENE INTERNATIONAL LTD", ISIN: "INE398R01022", HasOptions: true},
	{Symbol: "SONACOMS", Name: "SONA BLW PRECISION FRGS L", ISIN: "INE073K01018", HasOptions: true},
	{Symbol: "SBIN", Name: "STATE BANK OF INDIA", ISIN: "INE062A01020", HasOptions: true},
	{Symbol: "RELIANCE", Name: "RELIANCE INDUSTRIES LTD", ISIN: "INE002A01018", HasOptions: true},
	{Symbol: "SAMMAANCAP", Name: "SAMMAAN CAPITAL LIMITED", ISIN: "INE148I01020", HasOptions: true},
	{Symbol: "SUPREMEIND", Name: "SUPREME INDUSTRIES LTD", ISIN: "INE195A01028", HasOptions: true},
	{Symbol: "SUNPHARMA", Name: "SUN PHARMACEUTICAL IND L", ISIN: "INE044A01036", HasOptions: true},
	{Symbol: "RECLTD", Name: "REC LIMITED", ISIN: "INE020B01018", HasOptions: true},
	{Symbol: "SRF", Name: "SRF LTD", ISIN: "INE647A01010", HasOptions: true},
	{Symbol: "RBLBANK", Name: "RBL BANK LIMITED", ISIN: "INE976G01028", HasOptions: true},
	{Symbol: "SBICARD", Name: "SBI CARDS & PAY SER LTD", ISIN: "INE018E01016", HasOptions: true},
	{Symbol: "RVNL", Name: "RAIL VIKAS NIGAM LIMITED", ISIN: "INE415G01027", HasOptions: true},
	{Symbol: "SOLARINDS", Name: "SOLAR INDUSTRIES (I) LTD", ISIN: "INE343H01029", HasOptions: true},
	{Symbol: "SUZLON", Name: "SUZLON ENERGY LIMITED", ISIN: "INE040H01021", HasOptions: true},
	{Symbol: "SAIL", Name: "STEEL AUTHORITY OF INDIA", ISIN: "INE114A01011", HasOptions: true},
	{Symbol: "SIEMENS", Name: "SIEMENS LTD", ISIN: "INE003A01024", HasOptions: true},
	{Symbol: "TATACONSUM", Name: "TATA CONSUMER PRODUCT LTD", ISIN: "INE192A01025", HasOptions: true},
	{Symbol: "TATATECH", Name: "TATA TECHNOLOGIES LIMITED", ISIN: "INE142M01025", HasOptions: true},
	{Symbol: "TRENT", Name: "TRENT LTD", ISIN: "INE849A01020", HasOptions: true},
	{Symbol: "TECHM", Name: "TECH MAHINDRA LIMITED", ISIN: "INE669C01036", HasOptions: true},
	{Symbol: "TATASTEEL", Name: "TATA STEEL LIMITED", ISIN: "INE081A01020", HasOptions: true},
	{Symbol: "TIINDIA", Name: "TUBE INVEST OF INDIA LTD", ISIN: "INE974X01010", HasOptions: true},
	{Symbol: "TORNTPOWER", Name: "TORRENT POWER LTD", ISIN: "INE813H01021", HasOptions: true},
	{Symbol: "TATAPOWER", Name: "TATA POWER CO LTD", ISIN: "INE245A01021", HasOptions: true},
	{Symbol: "TITAGARH", Name: "TITAGARH RAIL SYSTEMS LTD", ISIN: "INE615H01020", HasOptions: true},
	{Symbol: "TCS", Name: "TATA CONSULTANCY SERV LT", ISIN: "INE467B01029", HasOptions: true},
	{Symbol: "TVSMOTOR", Name: "TVS MOTOR COMPANY LTD", ISIN: "INE494B01023", HasOptions: true},
	{Symbol: "TITAN", Name: "TITAN COMPANY LIMITED", ISIN: "INE280A01028", HasOptions: true},
	{Symbol: "TATAMOTORS", Name: "TATA MOTORS LTD", ISIN: "INE155A01022", HasOptions: true},
	{Symbol: "TORNTPHARM", Name: "TORRENT PHARMACEUTICALS L", ISIN: "INE685A01028", HasOptions: true},
	{Symbol: "TATAELXSI", Name: "TATA ELXSI LIMITED", ISIN: "INE670A01012", HasOptions: true},
	{Symbol: "UNOMINDA", Name: "UNO MINDA LIMITED", ISIN: "INE405E01023", HasOptions: true},
	{Symbol: "YESBANK", Name: "YES BANK LIMITED", ISIN: "INE528G01035", HasOptions: true},
	{Symbol: "WIPRO", Name: "WIPRO LTD", ISIN: "INE075A01022", HasOptions: true},
	{Symbol: "VEDL", Name: "VEDANTA LIMITED", ISIN: "INE205A01025", HasOptions: true},
	{Symbol: "UNITDSPR", Name: "UNITED SPIRITS LIMITED", ISIN: "INE854D01024", HasOptions: true},
	{Symbol: "VOLTAS", Name: "VOLTAS LTD", ISIN: "INE226A01021", HasOptions: true},
	{Symbol: "ZYDUSLIFE", Name: "ZYDUS LIFESCIENCES LTD", ISIN: "INE010B01027", HasOptions: true},
	{Symbol: "UNIONBANK", Name: "UNION BANK OF INDIA", ISIN: "INE692A01016", HasOptions: true},
	{Symbol: "UPL", Name: "UPL LIMITED", ISIN: "INE628A01036", HasOptions: true},
	{Symbol: "ULTRACEMCO", Name: "ULTRATECH CEMENT LIMITED", ISIN: "INE481G01011", HasOptions: true},
	{Symbol: "VBL", Name: "VARUN BEVERAGES LIMITED", ISIN: "INE200M01039", HasOptions: true},
}
