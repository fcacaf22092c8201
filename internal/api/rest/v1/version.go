package v1

// BasePath is the URL prefix shared by every route in this API version
const BasePath = "/api/v1/pvs"
