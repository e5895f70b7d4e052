// Package npm provides an HTTP client for the npm registry API.
//
// # Overview
//
// This package fetches package documents from the npm registry
// (https://registry.npmjs.org by default, or any compatible mirror).
//
// # Usage
//
//	client := npm.NewClient(npm.Options{})
//
//	pkg, err := client.FetchPackage(ctx, "express")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for v, info := range pkg.Versions {
//	    fmt.Println(v, info.Dependencies)
//	}
//
// # PackageInfo
//
// [Client.FetchPackage] returns the whole [PackageInfo] document: every
// published version with its runtime "dependencies", plus the top-level
// homepage and repository used for linking. Choosing a version is left to the
// caller. devDependencies, peerDependencies and optionalDependencies are not
// decoded.
//
// Scoped names are requested as "@scope%2Fname".
package npm
