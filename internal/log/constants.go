package log

const (
	KeyAppName       = "app"
	KeyTag           = "tag"
	KeyProcess       = "process"
	KeyRequestID     = "requestId"
	KeyConfig        = "config"
	KeyToken         = "token"
	KeySessionID     = "sessionId"
	KeySellerID      = "sellerId"
	KeyUserID        = "userId"
	KeyUsername      = "username"
	KeySaleID        = "saleId"
	KeyProductID     = "productId"
	KeyProductSku    = "productSku"
	KeyQuantity      = "quantity"
	KeyDocumentID    = "documentId"
	KeyBuyerName     = "buyerName"
	KeyCart          = "cart"
	KeyCartLine      = "cartLine"
	KeyCartLines     = "cartLines"
	KeyTotals        = "totals"
	KeyCheckoutState = "checkoutState"
	KeyCacheKey      = "cacheKey"
	KeyQuery         = "query"
	KeyProductCount  = "productCount"
	KeyPathValues    = "pathValues"
	KeyStatusCode    = "statusCode"
	KeyRequest       = "request"
	KeyHeader        = "header"
	KeyBody          = "body"
	KeyRequestHost   = "host"
	KeyRequestIp     = "requesterIP"
	KeyRequestMethod = "requestMethod"
	KeyRequestURI    = "requestURI"
	KeyRequestURL    = "requestURL"
	KeyTraceID       = "traceId"
	KeySpanID        = "spanId"
)
